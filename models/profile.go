package models

// Profile is an AWS CLI profile merged from ~/.aws/config and ~/.aws/credentials.
type Profile struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Output string `json:"output,omitempty"`
}

// ProfileInfo is one row of the profile listing.
type ProfileInfo struct {
	Name      string `json:"name"`
	Region    string `json:"region,omitempty"`
	HasMFA    bool   `json:"has_mfa"`
	HasConfig bool   `json:"has_config"`
	MFASerial string `json:"mfa_serial,omitempty"`
}

type ProfileList struct {
	Profiles          []ProfileInfo `json:"profiles"`
	HasConfigurations bool          `json:"has_configurations"`
}
