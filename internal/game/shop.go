package game

import (
	"context"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

// Purchase is the result of BuyItem.
type Purchase struct {
	Item    models.OwnedItem `json:"item"`
	Balance int              `json:"balance"`
}

// ShopListings annotates the catalog with ownership and affordability.
func (s *Store) ShopListings() []models.ShopListing {
	st := s.Snapshot()
	out := make([]models.ShopListing, 0, len(s.catalog.Shop))
	for _, it := range s.catalog.Shop {
		out = append(out, models.ShopListing{
			ShopItem:   it,
			Owned:      st.Owns(it.ID),
			Affordable: st.Progress.Currency >= it.Price,
		})
	}
	return out
}

// BuyItem debits the price and adds the item to the inventory in one mutation.
// Every item can be bought at most once.
func (s *Store) BuyItem(ctx context.Context, itemID string) (Purchase, error) {
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return Purchase{}, errors.NewUnknownEntityError("item", itemID)
	}

	var p Purchase
	_, err := s.mutate(ctx, "buy_item", func(st *models.GameState) error {
		if st.Owns(item.ID) {
			return errors.NewAlreadyOwnedError(item.ID)
		}
		if st.Progress.Currency < item.Price {
			return errors.NewInsufficientFundsError(item.ID, item.Price, st.Progress.Currency)
		}
		owned := models.OwnedItem{ShopItem: item, PurchasedAt: s.now()}
		st.Progress.Currency -= item.Price
		st.Inventory = append(st.Inventory, owned)
		p = Purchase{Item: owned, Balance: st.Progress.Currency}
		return nil
	})
	if err != nil {
		return Purchase{}, err
	}
	s.log.Info("item purchased: %s for %d coins", item.ID, item.Price)
	return p, nil
}

// EquipItem puts an owned accessory or pet on the buddy, or selects an owned theme.
// Equipping something already equipped is reported as OutcomeUnchanged.
func (s *Store) EquipItem(ctx context.Context, itemID string) (Outcome, error) {
	_, err := s.mutate(ctx, "equip_item", func(st *models.GameState) error {
		var item *models.OwnedItem
		for i := range st.Inventory {
			if st.Inventory[i].ID == itemID {
				item = &st.Inventory[i]
				break
			}
		}
		if item == nil {
			return errors.NewUnknownEntityError("owned item", itemID)
		}

		switch item.Category {
		case models.CategoryAccessory:
			if contains(st.Buddy.Accessories, itemID) {
				return errNoChange
			}
			st.Buddy.Accessories = append(st.Buddy.Accessories, itemID)
		case models.CategoryPet:
			if contains(st.Buddy.Pets, itemID) {
				return errNoChange
			}
			st.Buddy.Pets = append(st.Buddy.Pets, itemID)
		case models.CategoryTheme:
			if st.EquippedTheme == itemID {
				return errNoChange
			}
			st.EquippedTheme = itemID
		default:
			return errors.NewNotEquippableError(itemID, string(item.Category))
		}
		return nil
	})
	if errors.Is(err, errNoChange) {
		return OutcomeUnchanged, nil
	}
	if err != nil {
		return "", err
	}
	return OutcomeApplied, nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
