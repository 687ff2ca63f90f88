package domain

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

const (
	EventBloodDonation = "BLOOD_DONATION"
	EventVillageCamp   = "VILLAGE_CAMP"
	EventHealthCheckup = "HEALTH_CHECKUP"
	EventDonationDrive = "DONATION_DRIVE"
	EventShortEvent    = "SHORT_EVENT"
)

const (
	ProjectActive        = "ACTIVE"
	ProjectInDevelopment = "IN_DEVELOPMENT"
	ProjectCompleted     = "COMPLETED"
	ProjectArchived      = "ARCHIVED"
)

const (
	TeamLeadership   = "LEADERSHIP"
	TeamCoordination = "COORDINATION"
	TeamCoreMember   = "CORE_MEMBER"
	TeamAdvisor      = "ADVISOR"
)

const (
	PhotoEvent       = "EVENT"
	PhotoGeneral     = "GENERAL"
	PhotoTeam        = "TEAM"
	PhotoProject     = "PROJECT"
	PhotoAchievement = "ACHIEVEMENT"
	PhotoActivity    = "ACTIVITY"
)

const (
	SettingContact = "contact"
	SettingSocial  = "social"
	SettingGeneral = "general"
)

const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Entity types a gallery photo may reference.
const (
	LinkEvent   = "EVENT"
	LinkProject = "PROJECT"
	LinkMember  = "MEMBER"
)

var EventCategories = map[string]bool{
	EventBloodDonation: true,
	EventVillageCamp:   true,
	EventHealthCheckup: true,
	EventDonationDrive: true,
	EventShortEvent:    true,
}

var ProjectStatuses = map[string]bool{
	ProjectActive:        true,
	ProjectInDevelopment: true,
	ProjectCompleted:     true,
	ProjectArchived:      true,
}

var TeamCategories = map[string]bool{
	TeamLeadership:   true,
	TeamCoordination: true,
	TeamCoreMember:   true,
	TeamAdvisor:      true,
}

var PhotoCategories = map[string]bool{
	PhotoEvent:       true,
	PhotoGeneral:     true,
	PhotoTeam:        true,
	PhotoProject:     true,
	PhotoAchievement: true,
	PhotoActivity:    true,
}

var SettingCategories = map[string]bool{
	SettingContact: true,
	SettingSocial:  true,
	SettingGeneral: true,
}
