package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateClientPassword gera uma senha curta e legível para acesso do cliente
// a um dashboard, usada quando o admin não informa uma senha na criação.
func GenerateClientPassword() (string, error) {
	return gonanoid.Generate(characters, 10)
}
