package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamUnavailable используется, когда внешний генеративный сервис
	// недоступен (таймаут, транспортная ошибка, не-2xx статус от API).
	ErrUpstreamUnavailable = errors.New("generation service unavailable")

	// ErrMalformedResponse используется, когда ответ генеративного сервиса
	// не содержит разбираемой структуры или в ней нет обязательных полей.
	ErrMalformedResponse = errors.New("malformed generation response")
)
