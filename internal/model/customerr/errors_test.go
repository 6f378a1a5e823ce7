package customerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_KindOf_ShouldFindKindThroughWrapping(t *testing.T) {
	err := errors.Wrap(New(InvalidCredential, "invalid_app_id"), "get usage")

	assert.Equal(t, InvalidCredential, KindOf(err))
	assert.True(t, errors.Is(err, &Error{Kind: InvalidCredential}))
	assert.False(t, errors.Is(err, &Error{Kind: QuotaExhausted}))
}

func Test_KindOf_ShouldReturnUnknownForPlainErrors(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(errors.New("boom")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func Test_Quota_ShouldCarryDaysRemaining(t *testing.T) {
	err := Quota(4)

	e, ok := As(errors.Wrap(err, "check usage"))
	assert.True(t, ok)
	assert.Equal(t, int64(4), e.DaysRemaining)
	assert.Equal(t, "quota_exhausted: quota will reset in 4 days", err.Error())
}
