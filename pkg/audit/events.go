package audit

import "fmt"

// AuthenticateEvent records an admin login attempt
type AuthenticateEvent struct {
	Email        string
	AdminID      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Email)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.AdminID != "" {
		sd[SDIDAuth]["admin_id"] = e.AdminID
	}
	return sd
}

// OrgCreateEvent records an organization creation
type OrgCreateEvent struct {
	OrgName      string
	OrgID        string
	PartitionID  string
	AdminEmail   string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e OrgCreateEvent) MessageID() string {
	return "org-create"
}

func (e OrgCreateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("organization %s created with partition %s", e.OrgName, e.PartitionID)
	}
	msg := fmt.Sprintf("failed to create organization %s", e.OrgName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e OrgCreateEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e OrgCreateEvent) Facility() int {
	return FacilityAuth
}

func (e OrgCreateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"organization": e.OrgName,
		},
		SDIDAction: {
			"operation": "create",
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.OrgID != "" {
		sd[SDIDSubject]["org_id"] = e.OrgID
	}
	if e.PartitionID != "" {
		sd[SDIDSubject]["partition"] = e.PartitionID
	}
	if e.AdminEmail != "" {
		sd[SDIDAuth] = map[string]string{"user": e.AdminEmail}
	}
	return sd
}

// OrgDeleteEvent records an organization soft-delete and partition drop
type OrgDeleteEvent struct {
	OrgName      string
	OrgID        string
	PartitionID  string
	AdminID      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e OrgDeleteEvent) MessageID() string {
	return "org-delete"
}

func (e OrgDeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("organization %s deleted and partition %s dropped", e.OrgName, e.PartitionID)
	}
	msg := fmt.Sprintf("failed to delete organization %s", e.OrgName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e OrgDeleteEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e OrgDeleteEvent) Facility() int {
	return FacilityAuth
}

func (e OrgDeleteEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"organization": e.OrgName,
		},
		SDIDAction: {
			"operation": "delete",
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.AdminID != "" {
		sd[SDIDAuth] = map[string]string{"admin_id": e.AdminID}
	}
	return sd
}

// OrgRenameEvent records an organization rename and partition move
type OrgRenameEvent struct {
	OldName      string
	NewName      string
	OldPartition string
	NewPartition string
	AdminEmail   string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e OrgRenameEvent) MessageID() string {
	return "org-rename"
}

func (e OrgRenameEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("organization %s renamed to %s (partition %s to %s)",
			e.OldName, e.NewName, e.OldPartition, e.NewPartition)
	}
	msg := fmt.Sprintf("failed to rename organization %s", e.OldName)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e OrgRenameEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e OrgRenameEvent) Facility() int {
	return FacilityAuth
}

func (e OrgRenameEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"organization": e.OldName,
			"new_name":     e.NewName,
		},
		SDIDAction: {
			"operation": "rename",
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.AdminEmail != "" {
		sd[SDIDAuth] = map[string]string{"user": e.AdminEmail}
	}
	return sd
}
