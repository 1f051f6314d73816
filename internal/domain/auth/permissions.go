package auth

const (
	RoleViewer  = "viewer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

const (
	PermDashboardRead    = "dashboard.read"
	PermPersonnelRead    = "personnel.read"
	PermPersonnelWrite   = "personnel.write"
	PermProjectsRead     = "projects.read"
	PermProjectsWrite    = "projects.write"
	PermProjectsAssign   = "projects.assign"
	PermAnalysisRun      = "analysis.run"
	PermEvaluationsRead  = "evaluations.read"
	PermEvaluationsWrite = "evaluations.write"
	PermResumesUpload    = "resumes.upload"
)

var RolePermissions = map[string][]string{
	RoleViewer: {
		PermDashboardRead,
		PermPersonnelRead,
		PermProjectsRead,
		PermEvaluationsRead,
	},
	RoleManager: {
		PermDashboardRead,
		PermPersonnelRead,
		PermPersonnelWrite,
		PermProjectsRead,
		PermProjectsWrite,
		PermProjectsAssign,
		PermAnalysisRun,
		PermEvaluationsRead,
		PermEvaluationsWrite,
		PermResumesUpload,
	},
}

// Allowed reports whether role grants permission. Admin is granted everything.
func Allowed(role, permission string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// RoleStore answers permission checks from the static role table.
type RoleStore struct{}

func (RoleStore) HasPermission(role, permission string) bool {
	return Allowed(role, permission)
}
