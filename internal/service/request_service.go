package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/monitor"
	"hedera-bridge/pkg/walletconnect"

	"go.uber.org/zap"
)

const (
	outcomeResult      = "result"
	outcomeError       = "error"
	outcomeWalletError = "wallet_error"
)

// HederaRequestService 解码 -> 签名 -> (执行 | 返回) -> 响应, 每个 method 都是终止分支
type HederaRequestService struct {
	wallet      Signer
	unifyErrors bool
}

// NewHederaRequestService wallet 为 nil 时所有 Approve 都返回 ErrWalletUnavailable
// unifyErrors 为 true 时钱包侧失败改为 JSON-RPC error 返回
func NewHederaRequestService(w Signer, unifyErrors bool) *HederaRequestService {
	return &HederaRequestService{
		wallet:      w,
		unifyErrors: unifyErrors,
	}
}

func (s *HederaRequestService) Approve(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response {
	method := req.Method()
	start := time.Now()

	resp := s.dispatch(req)

	outcome := outcomeResult
	if resp.IsError() {
		outcome = outcomeError
		logger.Error("session request failed",
			zap.Int64("id", req.ID),
			zap.String("method", method),
			zap.String("error", resp.Error.Message))
	} else if failed, msg := walletFailure(resp.Result); failed {
		outcome = outcomeWalletError
		logger.Error("session request failed in wallet",
			zap.Int64("id", req.ID),
			zap.String("method", method),
			zap.String("error", msg))
	} else {
		logger.Info("session request approved", zap.Int64("id", req.ID), zap.String("method", method))
	}

	monitor.Business.SessionRequestsTotal.WithLabelValues(metricMethod(method), outcome).Inc()
	monitor.Business.SessionRequestDuration.WithLabelValues(metricMethod(method)).Observe(time.Since(start).Seconds())
	return resp
}

func (s *HederaRequestService) Reject(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response {
	logger.Info("session request rejected", zap.Int64("id", req.ID), zap.String("method", req.Method()))
	monitor.Business.SessionRequestsTotal.WithLabelValues(metricMethod(req.Method()), "rejected").Inc()
	return jsonrpc.FormatError(req.ID, errno.ErrUserRejectedMethods)
}

func (s *HederaRequestService) dispatch(req *walletconnect.SessionRequest) *jsonrpc.Response {
	request := req.Params.Request

	if !hederarpc.IsSigningMethod(request.Method) {
		return jsonrpc.FormatError(req.ID, errno.ErrInvalidMethod)
	}
	if s.wallet == nil {
		return jsonrpc.FormatError(req.ID, errno.ErrWalletUnavailable)
	}

	switch request.Method {
	case hederarpc.MethodSignAndExecuteTransaction:
		tx, _, err := s.decodeTransaction(request.Params)
		if err != nil {
			return jsonrpc.FormatError(req.ID, err)
		}
		result := s.wallet.SignAndExecuteTransaction(tx)
		if s.unifyErrors && result.Error != "" {
			return jsonrpc.FormatError(req.ID, errors.New(result.Error))
		}
		return jsonrpc.FormatResult(req.ID, result)

	case hederarpc.MethodSignAndReturnTransaction:
		tx, requestType, err := s.decodeTransaction(request.Params)
		if err != nil {
			return jsonrpc.FormatError(req.ID, err)
		}
		result := s.wallet.SignAndReturnTransaction(tx, requestType)
		if s.unifyErrors && result.Error != "" {
			return jsonrpc.FormatError(req.ID, errors.New(result.Error))
		}
		return jsonrpc.FormatResult(req.ID, result)

	case hederarpc.MethodSignMessage:
		var params hederarpc.SignMessageParams
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return jsonrpc.FormatError(req.ID, errno.ErrMessageUndecodable)
		}
		result, err := s.wallet.SignMessage(params.Message)
		if err != nil {
			return jsonrpc.FormatError(req.ID, err)
		}
		return jsonrpc.FormatResult(req.ID, result)

	default:
		return jsonrpc.FormatError(req.ID, errno.ErrInvalidMethod)
	}
}

// decodeTransaction params.transaction.bytes -> SDK 交易, 任何失败都是固定文案
func (s *HederaRequestService) decodeTransaction(raw json.RawMessage) (interface{}, string, error) {
	var params hederarpc.SignTransactionParams
	if err := json.Unmarshal(raw, &params); err != nil || params.Transaction == nil {
		return nil, "", errno.ErrTransactionUndecodable
	}

	tx, err := s.wallet.TransactionFromEncodedBytes(params.Transaction.Bytes)
	if err != nil || tx == nil {
		if err != nil {
			logger.Debug("decode transaction failed", zap.Error(err))
		}
		return nil, "", errno.ErrTransactionUndecodable
	}
	return tx, params.Transaction.Type, nil
}

// walletFailure 成功信封中携带 {error} 的情况
func walletFailure(result interface{}) (bool, string) {
	type errorCarrier interface{ WalletError() string }
	if c, ok := result.(errorCarrier); ok && c.WalletError() != "" {
		return true, c.WalletError()
	}
	return false, ""
}

// metricMethod 未知 method 归为一类, 避免标签基数失控
func metricMethod(method string) string {
	if hederarpc.IsSigningMethod(method) {
		return method
	}
	return "unknown"
}
