package input

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
)

// CredentialSource yields the session credential sent as the Cookie header.
type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// StaticCredential is a credential known up front, used verbatim.
type StaticCredential string

// Credential implements CredentialSource.
func (s StaticCredential) Credential(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoCredential
	}

	return string(s), nil
}

// EnvFileCredential reads a KEY=VALUE file and picks the Key entry.
// Blank lines, comments and other keys are ignored. The file is read on
// every call, so an updated cookie is picked up without a restart.
//
// Values follow dotenv rules: surrounding quotes are removed, an unquoted
// value ends at " #", and $VAR references expand except inside single
// quotes. Use single quotes to send a value byte for byte; Config.Cookie
// is always sent as given.
type EnvFileCredential struct {
	Fs   afero.Fs
	Path string
	// Key defaults to CookieKey.
	Key string
}

// Credential implements CredentialSource.
func (e EnvFileCredential) Credential(context.Context) (string, error) {
	key := e.Key
	if key == "" {
		key = CookieKey
	}
	f, err := e.Fs.Open(e.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	defer f.Close()

	value := gotenv.Parse(f)[key]
	if value == "" {
		return "", fmt.Errorf("%w: %s has no %s entry", ErrNoCredential, e.Path, key)
	}

	return value, nil
}
