package domain

import "fmt"

// Catalog is the static reference dataset: religions, their kits and
// the add-on services. It is loaded once at process start and never mutated.
type Catalog struct {
	Religions []Religion
	Kits      []Kit
	Services  []Service
}

// ReligionByID returns the religion with the given id, if present
func (c *Catalog) ReligionByID(id string) (*Religion, bool) {
	for i := range c.Religions {
		if c.Religions[i].ID == id {
			return &c.Religions[i], true
		}
	}
	return nil, false
}

// KitFor returns the kit of the given religion, if present
func (c *Catalog) KitFor(religionID string) (*Kit, bool) {
	for i := range c.Kits {
		if c.Kits[i].ReligionID == religionID {
			return &c.Kits[i], true
		}
	}
	return nil, false
}

// ServiceByID returns the service with the given id, if present
func (c *Catalog) ServiceByID(id string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// ServicesFor returns the services applicable to the given religion
func (c *Catalog) ServicesFor(religionID string) []Service {
	var services []Service
	for _, svc := range c.Services {
		if svc.AppliesTo(religionID) {
			services = append(services, svc)
		}
	}
	return services
}

// Validate checks referential integrity of the dataset: unique ids,
// kits pointing at known religions, non-negative prices
func (c *Catalog) Validate() error {
	religionIDs := make(map[string]struct{}, len(c.Religions))
	for _, r := range c.Religions {
		if r.ID == "" {
			return fmt.Errorf("religion %q has empty id", r.Name)
		}
		if _, ok := religionIDs[r.ID]; ok {
			return fmt.Errorf("duplicate religion id %q", r.ID)
		}
		religionIDs[r.ID] = struct{}{}
	}

	kitReligions := make(map[string]struct{}, len(c.Kits))
	for _, kit := range c.Kits {
		if _, ok := religionIDs[kit.ReligionID]; !ok {
			return fmt.Errorf("kit references unknown religion %q", kit.ReligionID)
		}
		if _, ok := kitReligions[kit.ReligionID]; ok {
			return fmt.Errorf("religion %q has more than one kit", kit.ReligionID)
		}
		kitReligions[kit.ReligionID] = struct{}{}

		itemIDs := make(map[string]struct{}, len(kit.Items))
		for _, item := range kit.Items {
			if item.ID == "" {
				return fmt.Errorf("kit item %q in kit %q has empty id", item.Name, kit.ReligionID)
			}
			if _, ok := itemIDs[item.ID]; ok {
				return fmt.Errorf("duplicate kit item id %q in kit %q", item.ID, kit.ReligionID)
			}
			itemIDs[item.ID] = struct{}{}
			if item.Price < 0 {
				return fmt.Errorf("kit item %q has negative price %d", item.ID, item.Price)
			}
		}
	}

	serviceIDs := make(map[string]struct{}, len(c.Services))
	for _, svc := range c.Services {
		if svc.ID == "" {
			return fmt.Errorf("service %q has empty id", svc.Name)
		}
		if _, ok := serviceIDs[svc.ID]; ok {
			return fmt.Errorf("duplicate service id %q", svc.ID)
		}
		serviceIDs[svc.ID] = struct{}{}
		if svc.Price < 0 {
			return fmt.Errorf("service %q has negative price %d", svc.ID, svc.Price)
		}
		for _, rid := range svc.Religions {
			if _, ok := religionIDs[rid]; !ok {
				return fmt.Errorf("service %q references unknown religion %q", svc.ID, rid)
			}
		}
	}

	return nil
}
