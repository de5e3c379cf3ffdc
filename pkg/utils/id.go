package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRequestID gera um identificador curto para correlação de requisições.
func GenerateRequestID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
