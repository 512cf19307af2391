package tx

import "errors"

// Receipt is the outcome of applying one transaction (spec §4.D, §6).
type Receipt struct {
	EngineResult     string
	EngineResultCode int
	Success          bool
}

const (
	resultTesSUCCESS         = "tesSUCCESS"
	resultTecNoTarget        = "tecNO_TARGET"
	resultTecUnfundedPayment = "tecUNFUNDED_PAYMENT"
	resultTefPastSeq         = "tefPAST_SEQ"
	resultTelInsufFeeP       = "telINSUF_FEE_P"
	resultTemUnknown         = "temUNKNOWN"
)

func successReceipt() Receipt {
	return Receipt{EngineResult: resultTesSUCCESS, EngineResultCode: 0, Success: true}
}

func failureReceipt(err error) Receipt {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return Receipt{EngineResult: resultTecNoTarget, EngineResultCode: 130, Success: false}
	case errors.Is(err, ErrBadSequence):
		return Receipt{EngineResult: resultTefPastSeq, EngineResultCode: -190, Success: false}
	case errors.Is(err, ErrInsufficientFee):
		return Receipt{EngineResult: resultTelInsufFeeP, EngineResultCode: -55, Success: false}
	case errors.Is(err, ErrUnfundedPayment):
		return Receipt{EngineResult: resultTecUnfundedPayment, EngineResultCode: 104, Success: false}
	default:
		return Receipt{EngineResult: resultTemUnknown, EngineResultCode: -199, Success: false}
	}
}
