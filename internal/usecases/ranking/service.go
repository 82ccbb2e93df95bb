package ranking

import (
	"context"

	"github.com/vfg2006/pharma-sales-api/infrastructure/datasource"
	"github.com/vfg2006/pharma-sales-api/internal/domain"
	"github.com/vfg2006/pharma-sales-api/pkg/log"
)

type RankingService interface {
	GetTopProducts(ctx context.Context, limit int) ([]domain.ProductCount, error)
}

type TopProductsService struct {
	Loader datasource.Loader
}

func NewTopProductsService(loader datasource.Loader) RankingService {
	return &TopProductsService{
		Loader: loader,
	}
}

// GetTopProducts carrega a tabela e devolve o ranking de produtos
func (s *TopProductsService) GetTopProducts(ctx context.Context, limit int) ([]domain.ProductCount, error) {
	table, err := s.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	top, err := TopProducts(table, limit)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"limit":    limit,
		"products": len(top),
	}).Debug("ranking: produtos mais vendidos calculados")

	return top, nil
}
