package models

import "time"

// CredentialValidityBuffer is how long cached credentials must still be valid
// for to be reused; the tunnel has to outlive its own setup.
const CredentialValidityBuffer = 5 * time.Minute

// SessionCredentials holds temporary credentials returned by STS GetSessionToken.
type SessionCredentials struct {
	AccessKeyID     string    `json:"access_key_id"`
	SecretAccessKey string    `json:"secret_access_key"`
	SessionToken    string    `json:"session_token"`
	Expiration      time.Time `json:"expiration"`
}

// IsValid reports whether the credentials expire later than now plus the buffer.
func (c *SessionCredentials) IsValid() bool {
	return c.IsValidAt(time.Now())
}

func (c *SessionCredentials) IsValidAt(now time.Time) bool {
	return c.Expiration.After(now.Add(CredentialValidityBuffer))
}

// Env returns the AWS environment variables for these credentials. Empty
// fields are left out instead of exported as empty strings.
func (c *SessionCredentials) Env() map[string]string {
	env := make(map[string]string, 3)
	if c.AccessKeyID != "" {
		env["AWS_ACCESS_KEY_ID"] = c.AccessKeyID
	}
	if c.SecretAccessKey != "" {
		env["AWS_SECRET_ACCESS_KEY"] = c.SecretAccessKey
	}
	if c.SessionToken != "" {
		env["AWS_SESSION_TOKEN"] = c.SessionToken
	}
	return env
}
