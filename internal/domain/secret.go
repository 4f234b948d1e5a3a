package domain

import (
	"errors"
	"strings"
)

const secretNamespace = "course-tutor"

// Well-known secret store keys.
const (
	SecretPlatformPassword = secretNamespace + "/platform/password"
	SecretWebServiceToken  = secretNamespace + "/platform/ws-token"
	SecretReasoningAPIKey  = secretNamespace + "/openai/api-key"
)

// SecretKey expands a short name such as "platform/password" into a
// namespaced store key. Keys already carrying the namespace are kept.
func SecretKey(name string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(name), "/")
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	if trimmed == secretNamespace || strings.HasPrefix(trimmed, secretNamespace+"/") {
		return trimmed, nil
	}
	return secretNamespace + "/" + trimmed, nil
}
