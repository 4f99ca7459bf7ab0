package shop

import "fmt"

type Catalog struct {
	items []Entitlement
	index map[string]int
}

var DefaultCatalog = MustCatalog([]Entitlement{
	{Name: "Chess Beginner", Description: "Starter role for new players.", Price: 25, RoleID: "1455250623510614157"},
	{Name: "Chess Improver", Description: "Shows dedication to improving.", Price: 75, RoleID: "1455250690892107961"},
	{Name: "Chess Pro", Description: "Recognizes strong consistent play.", Price: 200, RoleID: "1455250740653330453"},
	{Name: "Chess Master", Description: "Highlights elite skill and strategy.", Price: 500, RoleID: "1455250877999747214"},
	{Name: "Chess GOAT", Description: "Top-tier recognition across the server.", Price: 1000, RoleID: "1455250931473191148"},
})

func NewCatalog(items []Entitlement) (*Catalog, error) {
	index := make(map[string]int, len(items))
	for i, item := range items {
		if item.RoleID == "" {
			return nil, fmt.Errorf("entitlement %q has no role id", item.Name)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("entitlement %q has negative price %d", item.Name, item.Price)
		}
		if _, dup := index[item.RoleID]; dup {
			return nil, fmt.Errorf("duplicate role id %s", item.RoleID)
		}
		index[item.RoleID] = i
	}
	return &Catalog{items: items, index: index}, nil
}

func MustCatalog(items []Entitlement) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) All() []Entitlement {
	return c.items
}

func (c *Catalog) ByRoleID(roleID string) (Entitlement, bool) {
	i, ok := c.index[roleID]
	if !ok {
		return Entitlement{}, false
	}
	return c.items[i], true
}
