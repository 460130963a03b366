package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOf_Success(t *testing.T) {
	r := ResultOf(42, nil, "done")

	assert.True(t, r.Success())
	assert.Equal(t, 42, r.Value)
	assert.Equal(t, "done", r.Message)
	assert.Empty(t, r.Kind)
}

func TestResultOf_DomainFailureKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: cannot accept a request in status accepted", ErrInvalidStateTransition)
	r := ResultOf("ignored", err, "done")

	assert.False(t, r.Success())
	assert.Equal(t, KindInvalidStateTransition, r.Kind)
	assert.Equal(t, err.Error(), r.Message)
	assert.Empty(t, r.Value)
}

func TestFail_StoreFailureIsGeneric(t *testing.T) {
	r := Fail[int](errors.New("pq: relation notes does not exist"))

	assert.False(t, r.Success())
	assert.Equal(t, KindStoreFailure, r.Kind)
	assert.Equal(t, "internal error", r.Message)
}

func TestFail_NilErrorIsStillFailure(t *testing.T) {
	r := Fail[int](nil)
	assert.False(t, r.Success())
	assert.Equal(t, KindStoreFailure, r.Kind)
}
