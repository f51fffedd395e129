package permissions

// Permission keys guarding module endpoints. The registry collection is
// seeded with these on startup; administrators may add further keys at
// runtime.
const (
	KeyEmployeesView   = "employees.view"
	KeyEmployeesCreate = "employees.create"
	KeyEmployeesEdit   = "employees.edit"
	KeyEmployeesDelete = "employees.delete"
	KeyEmployeesExport = "employees.export"

	KeyIncidentsView   = "incidents.view"
	KeyIncidentsCreate = "incidents.create"
	KeyIncidentsEdit   = "incidents.edit"
	KeyIncidentsDelete = "incidents.delete"

	KeyVacationsView   = "vacations.view"
	KeyVacationsCreate = "vacations.create"
	KeyVacationsManage = "vacations.manage"

	KeyCircularsView   = "circulars.view"
	KeyCircularsManage = "circulars.manage"

	KeyFilesView   = "files.view"
	KeyFilesUpload = "files.upload"
	KeyFilesManage = "files.manage"

	KeyChatSend = "chat.send"

	KeyUsersManage  = "users.manage"
	KeyGroupsManage = "groups.manage"
	KeyAuditView    = "audit.view"
)

// DefaultRegistry seeds the permissions collection with the built-in keys.
var DefaultRegistry = []Permission{
	{Key: KeyEmployeesView, Label: "View employees", Description: "Read employee records", Category: CategoryView},
	{Key: KeyEmployeesCreate, Label: "Create employees", Description: "Create employee records", Category: CategoryCreate},
	{Key: KeyEmployeesEdit, Label: "Edit employees", Description: "Update employee records", Category: CategoryEdit},
	{Key: KeyEmployeesDelete, Label: "Delete employees", Description: "Remove employee records", Category: CategoryDelete},
	{Key: KeyEmployeesExport, Label: "Export employees", Description: "Generate employee spreadsheets", Category: CategoryManage},

	{Key: KeyIncidentsView, Label: "View incidents", Description: "Read incident reports", Category: CategoryView},
	{Key: KeyIncidentsCreate, Label: "Create incidents", Description: "File incident reports", Category: CategoryCreate},
	{Key: KeyIncidentsEdit, Label: "Edit incidents", Description: "Update incident reports", Category: CategoryEdit},
	{Key: KeyIncidentsDelete, Label: "Delete incidents", Description: "Remove incident reports", Category: CategoryDelete},

	{Key: KeyVacationsView, Label: "View vacations", Description: "Read vacation requests", Category: CategoryView},
	{Key: KeyVacationsCreate, Label: "Request vacations", Description: "File vacation requests", Category: CategoryCreate},
	{Key: KeyVacationsManage, Label: "Manage vacations", Description: "Approve or reject vacation requests", Category: CategoryManage},

	{Key: KeyCircularsView, Label: "View circulars", Description: "Read company circulars", Category: CategoryView},
	{Key: KeyCircularsManage, Label: "Manage circulars", Description: "Publish and retire circulars", Category: CategoryManage},

	{Key: KeyFilesView, Label: "View files", Description: "Browse shared files", Category: CategoryView},
	{Key: KeyFilesUpload, Label: "Upload files", Description: "Upload shared files", Category: CategoryCreate},
	{Key: KeyFilesManage, Label: "Manage files", Description: "Delete and reshare files", Category: CategoryManage},

	{Key: KeyChatSend, Label: "Send messages", Description: "Send direct chat messages", Category: CategoryCreate},

	{Key: KeyUsersManage, Label: "Manage users", Description: "Administer user accounts and permissions", Category: CategoryAdmin},
	{Key: KeyGroupsManage, Label: "Manage groups", Description: "Administer permission groups", Category: CategoryAdmin},
	{Key: KeyAuditView, Label: "View audit log", Description: "Read the operation log", Category: CategoryAdmin},
}
