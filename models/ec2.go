package models

type EC2Instance struct {
	InstanceID       string
	Name             string
	PrivateIPAddress string
	State            string
}
