package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snb-go/core"
)

func TestDispatch(t *testing.T) {
	session := core.NewSession(NewMockWebWrapper(), "100012345678", "AQHtoken1")
	pm := NewProfileManager(session)

	var gotResult *GuardResult
	var gotErr error
	done := Dispatch(context.Background(), func(ctx context.Context) (*GuardResult, error) {
		return pm.Guard(ctx, true, "")
	}, func(result *GuardResult, err error) {
		gotResult, gotErr = result, err
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Dispatch did not complete")
	}

	require.NoError(t, gotErr)
	require.NotNil(t, gotResult)
	assert.True(t, gotResult.Success)
}

func TestDispatch_Error(t *testing.T) {
	wantErr := errors.New("boom")

	var gotErr error
	done := Dispatch(context.Background(), func(ctx context.Context) (string, error) {
		return "", wantErr
	}, func(result string, err error) {
		gotErr = err
	})
	<-done

	assert.ErrorIs(t, gotErr, wantErr)
}

func TestDispatch_NilCallback(t *testing.T) {
	done := Dispatch(context.Background(), func(ctx context.Context) (int, error) {
		return 1, nil
	}, nil)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Dispatch did not complete")
	}
}
