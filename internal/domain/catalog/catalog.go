package catalog

// Unit is the unit of measure a service is priced in.
type Unit string

const (
	UnitSquareMeter Unit = "m²"
	UnitCubicMeter  Unit = "m³"
	UnitPiece       Unit = "un"
	UnitDayRate     Unit = "diária"
	UnitLinearMeter Unit = "ml"
)

// Units lists every unit of measure, in display order.
var Units = []Unit{UnitSquareMeter, UnitCubicMeter, UnitPiece, UnitDayRate, UnitLinearMeter}

// Service is a catalog entry with a fixed negotiated unit price.
type Service struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  Unit    `json:"unit"`
}

// ManualService is the escape hatch for work outside the price table.
const ManualService = "Outros (Manual)"

// Services is the fixed price table agreed with the site contractor.
// Order is the order the entry form presents them in.
var Services = []Service{
	{Name: "Alvenaria Interna", Price: 10.00, Unit: UnitSquareMeter},
	{Name: "Alvenaria Shaft", Price: 14.00, Unit: UnitSquareMeter},
	{Name: "Alvenaria Externa", Price: 12.00, Unit: UnitSquareMeter},
	{Name: "Capiaço", Price: 7.00, Unit: UnitLinearMeter},
	{Name: "Chapisco", Price: 1.00, Unit: UnitSquareMeter},
	{Name: "Contrapiso – Escol", Price: 5.00, Unit: UnitSquareMeter},
	{Name: "Contrapiso – Hermes", Price: 6.00, Unit: UnitSquareMeter},
	{Name: "Marcação de Alvenaria – Porto", Price: 250.00, Unit: UnitPiece},
	{Name: "Marcação de Alvenaria – Hermes", Price: 150.00, Unit: UnitPiece},
	{Name: "Reboco", Price: 7.00, Unit: UnitSquareMeter},
	{Name: "Reboco Shaft", Price: 8.50, Unit: UnitSquareMeter},
	{Name: "Verga", Price: 20.00, Unit: UnitPiece},
	{Name: ManualService, Price: 0, Unit: UnitPiece},
}

// Find returns the catalog entry with the given name.
func Find(name string) (Service, bool) {
	for _, s := range Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}
