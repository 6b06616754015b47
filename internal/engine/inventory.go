package engine

import (
	"context"
	"slices"

	"hunterlog/internal/catalog"
)

// Inventory returns the owned items in acquisition order.
func (s *Service) Inventory() ([]catalog.RewardItem, error) {
	var out []catalog.RewardItem
	err := s.view(func() { out = slices.Clone(s.profile.Inventory) })
	return out, err
}

// Equipped returns the equipped item for each occupied slot.
func (s *Service) Equipped() (map[catalog.ItemType]catalog.RewardItem, error) {
	out := map[catalog.ItemType]catalog.RewardItem{}
	err := s.view(func() {
		for typ, id := range s.profile.EquippedItems {
			if it, ok := s.ownedItem(id); ok {
				out[typ] = it
			}
		}
	})
	return out, err
}

func (s *Service) ownedItem(id string) (catalog.RewardItem, bool) {
	for _, it := range s.profile.Inventory {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.RewardItem{}, false
}

type EquipResult struct {
	Item catalog.RewardItem
	// Replaced is the id previously equipped in the same slot, if any.
	Replaced string
}

// EquipItem equips an owned item into the slot for its type.
func (s *Service) EquipItem(ctx context.Context, itemID string) (*EquipResult, error) {
	var res *EquipResult
	err := s.mutate(ctx, func() error {
		item, ok := s.ownedItem(itemID)
		if !ok {
			return ErrItemNotOwned
		}
		if err := CanEquip(s.profile.Stats.Level, item); err != nil {
			return err
		}
		prev := s.profile.EquippedItems[item.Type]
		s.profile.EquippedItems[item.Type] = item.ID
		res = &EquipResult{Item: item}
		if prev != item.ID {
			res.Replaced = prev
		}
		return nil
	})
	if err != nil {
		s.log.Warnw("equip rejected", "item", itemID, "error", err)
		return nil, err
	}
	return res, nil
}

// UnequipItem clears the slot for the item's type when that item is the one
// equipped. It reports whether anything changed.
func (s *Service) UnequipItem(ctx context.Context, itemID string) (bool, error) {
	changed := false
	err := s.mutate(ctx, func() error {
		item, ok := s.ownedItem(itemID)
		if !ok || s.profile.EquippedItems[item.Type] != itemID {
			return nil
		}
		delete(s.profile.EquippedItems, item.Type)
		changed = true
		return nil
	})
	return changed, err
}
