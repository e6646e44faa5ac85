package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type balanceQuery struct {
	AccountID string `validate:"required,hedera_account"`
	Action    string `validate:"oneof=approve reject"`
}

func TestGetErrorMsg(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	err := v.Struct(balanceQuery{AccountID: "abc", Action: "approve"})
	require.Error(t, err)
	assert.Equal(t, "AccountID 必须是 shard.realm.num 格式", GetErrorMsg(err))

	err = v.Struct(balanceQuery{Action: "maybe"})
	require.Error(t, err)
	msg := GetErrorMsg(err)
	assert.Contains(t, msg, "AccountID 不能为空")
	assert.Contains(t, msg, "Action 必须是 [approve reject] 之一")

	assert.NoError(t, v.Struct(balanceQuery{AccountID: "0.0.1001", Action: "reject"}))
	assert.Equal(t, "请求参数错误", GetErrorMsg(errors.New("boom")))
}

func TestIsAccountID(t *testing.T) {
	assert.True(t, IsAccountID("0.0.3"))
	assert.False(t, IsAccountID("0.0"))
	assert.False(t, IsAccountID("0.0.x"))
}
