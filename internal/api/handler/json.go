package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// Todos os handlers serializam com a mesma instância, compatível com a
// biblioteca padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary
