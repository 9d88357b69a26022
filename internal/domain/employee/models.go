package employee

// Role is a trade category on the site.
type Role string

const (
	RolePedreiro    Role = "Pedreiro"
	RoleServente    Role = "Servente"
	RoleEncarregado Role = "Encarregado"
	RoleCarpinteiro Role = "Carpinteiro"
	RoleArmador     Role = "Armador"
	RoleEletricista Role = "Eletricista"
	RoleEncanador   Role = "Encanador"
)

// Roles lists every trade category, in registration-form order.
var Roles = []Role{
	RolePedreiro,
	RoleServente,
	RoleEncarregado,
	RoleCarpinteiro,
	RoleArmador,
	RoleEletricista,
	RoleEncanador,
}

// Employee is a registered worker. GrossSalary and NetSalary are the
// contractual and paycheck salaries; FGTSPercent and INSSPercent are the
// statutory withholding percentages applied to the gross salary.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        Role    `json:"role"`
	Site        string  `json:"site"`
	Active      bool    `json:"active"`
	GrossSalary float64 `json:"grossSalary"`
	NetSalary   float64 `json:"netSalary"`
	FGTSPercent float64 `json:"fgtsPercent"`
	INSSPercent float64 `json:"inssPercent"`
}
