package http

import "github.com/go-playground/validator/v10"

// validate instância única do go-playground/validator para os DTOs de entrada.
var validate = validator.New()
