// Package services содержит общие для бизнес-слоя определения.
package services

import "errors"

// ErrInvalidInput означает семантически некорректные данные запроса
// (нечисловая дата, неположительная цена). Операция к хранилищу
// при такой ошибке не выполнялась.
var ErrInvalidInput = errors.New("invalid input")
