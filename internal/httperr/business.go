package httperr

import "errors"

// BusinessError carrega um código de regra de negócio (por exemplo
// missing_service_value) do domínio até o handler, que o traduz em
// status HTTP e mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
