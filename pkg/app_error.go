package pkg

// AppError is an error that knows how it is rendered at the HTTP boundary.
//
// Code is the machine readable value of the "error" attribute, Message the
// human readable one.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []string
	Err        error
}

// HTTPError is the JSON error envelope returned by every route.
type HTTPError struct {
	Message string   `json:"message" example:"Erro ao criar novo cartão."`
	Error   string   `json:"error" example:"MissingValueOnRequest"`
	Fields  []string `json:"fields,omitempty"`
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func (e *AppError) WithFields(fields []string) *AppError {
	e.Fields = fields
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Message: e.Message, Error: e.Code, Fields: e.Fields}
}
