package service

import (
	"context"
	"errors"
	"fmt"

	"foodfriend/catalog"
	"foodfriend/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidNutritionRequest = errors.New("invalid nutrition request")
	ErrUnknownItem             = errors.New("unknown menu item")
)

type NutritionService struct {
	cache NutritionCache
	log   logrus.FieldLogger
}

// NewNutritionService accepts a nil cache; reports are then computed on every call.
func NewNutritionService(cache NutritionCache, log logrus.FieldLogger) *NutritionService {
	return &NutritionService{cache: cache, log: log}
}

// Generate computes the report from the static facts table. Cache errors
// only cost a recomputation.
func (s *NutritionService) Generate(ctx context.Context, portions []catalog.Portion) (catalog.Report, error) {
	if len(portions) == 0 {
		return catalog.Report{}, fmt.Errorf("%w: no items", ErrInvalidNutritionRequest)
	}
	for _, p := range portions {
		if p.Name == "" || p.Quantity < 1 {
			return catalog.Report{}, fmt.Errorf("%w: bad line %q x%d", ErrInvalidNutritionRequest, p.Name, p.Quantity)
		}
	}

	if s.cache == nil {
		return catalog.Calculate(portions), nil
	}

	key := s.cache.NutritionKey(portions)
	cached, err := s.cache.GetReport(ctx, key)
	if err != nil {
		s.log.WithError(err).Warn("nutrition cache read failed")
	}
	if cached != nil {
		return *cached, nil
	}

	report := catalog.Calculate(portions)
	if err := s.cache.SetReport(ctx, key, report); err != nil {
		s.log.WithError(err).Warn("nutrition cache write failed")
	}
	return report, nil
}

func (s *NutritionService) ItemFacts(itemID int) (domain.ItemFacts, error) {
	item, ok := catalog.Lookup(itemID)
	if !ok {
		return domain.ItemFacts{}, fmt.Errorf("%w: %d", ErrUnknownItem, itemID)
	}
	facts := catalog.Facts(item.Name)
	return domain.ItemFacts{
		ID:       item.ID,
		Name:     item.Name,
		Calories: facts.Calories,
		Protein:  facts.Protein,
		Carbs:    facts.Carbs,
		Fat:      facts.Fat,
		Fiber:    facts.Fiber,
		Sugar:    facts.Sugar,
		Vitamins: facts.Vitamins,
	}, nil
}
