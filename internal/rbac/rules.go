package rbac

// Role → permission table. Admin deliberately does not hold the exam-taking
// permissions: an admin session has no roll number to sit an exam under.
var RolePermissions = map[string][]string{
	"student": {
		"exam:start",
		"exam:submit",
		"results:view-own",
	},
	"admin": {
		"results:*",
		"students:*",
		"questions:seed",
	},
}
