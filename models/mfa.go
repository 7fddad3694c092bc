package models

import "time"

// MFADevice reflects an MFA device registered in IAM. It is never owned locally.
type MFADevice struct {
	UserName     string    `json:"UserName"`
	SerialNumber string    `json:"SerialNumber"`
	EnableDate   time.Time `json:"EnableDate"`
}

type VirtualMFADevice struct {
	SerialNumber string `json:"SerialNumber"`
}

// CLICredentials is the Credentials object of sts get-session-token.
type CLICredentials struct {
	AccessKeyID     string    `json:"AccessKeyId"`
	SecretAccessKey string    `json:"SecretAccessKey"`
	SessionToken    string    `json:"SessionToken"`
	Expiration      time.Time `json:"Expiration"`
}

// CLIOutput is the union of the JSON documents the AWS CLI returns for the
// calls akaw makes. Exactly one group of fields is populated per call kind.
type CLIOutput struct {
	VirtualMFADevice *VirtualMFADevice `json:"VirtualMFADevice,omitempty"`
	Credentials      *CLICredentials   `json:"Credentials,omitempty"`
	MFADevices       *[]MFADevice      `json:"MFADevices,omitempty"`

	UserID  string `json:"UserId,omitempty"`
	Account string `json:"Account,omitempty"`
	Arn     string `json:"Arn,omitempty"`
}

// MFASetupResult is returned by MFA setup and import.
type MFASetupResult struct {
	Profile  string `json:"profile"`
	Serial   string `json:"serial"`
	Imported bool   `json:"imported"`
}

// CodeResult is a TOTP code and the seconds left in its step.
type CodeResult struct {
	Code string `json:"code"`
	TTL  uint64 `json:"ttl"`
}
