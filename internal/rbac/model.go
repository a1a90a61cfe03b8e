package rbac

// Casbin model for role based access. Subjects are the portal roles,
// objects are resource names, actions are verbs.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies are static: the portal has three built-in roles and no
// tenant-scoped role editing.
var policies = [][]string{
	{"USER", "leave", "create"},
	{"USER", "leave", "read"},
	{"USER", "attendance", "create"},
	{"USER", "attendance", "read"},
	{"USER", "manual", "read"},
	{"USER", "progress", "write"},
	{"USER", "training", "read"},
	{"USER", "training", "complete"},
	{"USER", "announcement", "read"},

	{"ADMIN", "leave", "approve"},
	{"ADMIN", "leave", "grant"},
	{"ADMIN", "attendance", "approve"},
	{"ADMIN", "user", "manage"},
	{"ADMIN", "manual", "manage"},
	{"ADMIN", "training", "manage"},
	{"ADMIN", "announcement", "manage"},
	{"ADMIN", "export", "read"},

	{"DEVELOPER", "audit", "read"},
	{"DEVELOPER", "nodestatus", "read"},
	{"DEVELOPER", "security", "manage"},
	{"DEVELOPER", "rbac", "read"},
}

// roleInheritance makes ADMIN a superset of USER and DEVELOPER a
// superset of ADMIN.
var roleInheritance = [][]string{
	{"ADMIN", "USER"},
	{"DEVELOPER", "ADMIN"},
}
