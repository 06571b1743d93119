package models

// Service is an immutable catalog entry for a bookable service.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    int    `json:"price"`
}

// Barber is an immutable catalog entry for a staff member.
type Barber struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Catalog bundles the shop's bookable services, barbers and time slots.
// It is injected into the booking wizard instead of living as package state,
// so tests can substitute their own.
type Catalog struct {
	Services  []Service `json:"services"`
	Barbers   []Barber  `json:"barbers"`
	TimeSlots []string  `json:"timeSlots"`
}

// ServiceByID looks up a service by its catalog ID.
func (c Catalog) ServiceByID(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// BarberByID looks up a barber by their catalog ID.
func (c Catalog) BarberByID(id string) (Barber, bool) {
	for _, b := range c.Barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}

// DefaultCatalog returns the shop's standard offering.
func DefaultCatalog() Catalog {
	return Catalog{
		Services: []Service{
			{ID: "classic-cut", Name: "Classic Cut", Duration: "45 min", Price: 45},
			{ID: "premium-cut", Name: "Premium Cut & Style", Duration: "60 min", Price: 65},
			{ID: "buzz-cut", Name: "Buzz Cut", Duration: "20 min", Price: 25},
			{ID: "hot-towel-shave", Name: "Hot Towel Shave", Duration: "45 min", Price: 45},
			{ID: "beard-trim", Name: "Beard Trim & Shape", Duration: "30 min", Price: 35},
			{ID: "full-service", Name: "The Gentleman Package", Duration: "2 hours", Price: 120},
		},
		Barbers: []Barber{
			{ID: "marcus", Name: "Marc Johnson", Specialty: "Master Barber"},
			{ID: "alex", Name: "Alex Rodriz", Specialty: "Modern Styles"},
			{ID: "david", Name: "David Jhen", Specialty: "Traditional Cuts"},
		},
		TimeSlots: []string{
			"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
			"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
			"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
			"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
		},
	}
}

// ShopInfo carries the shop identity used in templates and calendar exports.
type ShopInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Domain  string `json:"domain"`
}
