package models

// CallerIdentity is the result of sts get-caller-identity.
type CallerIdentity struct {
	UserID  string `json:"UserId"`
	Account string `json:"Account"`
	Arn     string `json:"Arn"`
}

// IdentityInfo is the caller identity as shown to the user.
type IdentityInfo struct {
	Account  string `json:"account"`
	Username string `json:"username"`
	Arn      string `json:"arn"`
}

// StatusReport describes the MFA state of a profile.
type StatusReport struct {
	Profile      string        `json:"profile"`
	HasMFASecret bool          `json:"has_mfa_secret"`
	Identity     *IdentityInfo `json:"identity,omitempty"`
	MFADevice    string        `json:"mfa_device,omitempty"`
}
