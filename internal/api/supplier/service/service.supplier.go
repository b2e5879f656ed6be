// Package suppliersvc - service nhà cung cấp (Supplier).
package suppliersvc

import (
	"context"
	"fmt"

	basesvc "group_commerce/internal/api/base/service"
	models "group_commerce/internal/api/supplier/models"
	"group_commerce/internal/common"
	"group_commerce/internal/global"
)

// SupplierService là cấu trúc chứa các phương thức liên quan đến nhà cung cấp
type SupplierService struct {
	*basesvc.BaseServiceMongoImpl[models.Supplier]
}

// NewSupplierService tạo mới SupplierService
func NewSupplierService() (*SupplierService, error) {
	supplierCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Suppliers)
	if !exist {
		return nil, fmt.Errorf("failed to get suppliers collection: %v", common.ErrNotFound)
	}
	return &SupplierService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Supplier](supplierCollection),
	}, nil
}

// InsertOne chèn nhà cung cấp mới, điền điểm AI mặc định khi chưa được chấm:
// reliability 50, priceCompetitiveness 50, responseTime 24 giờ, qualityConsistency 50.
func (s *SupplierService) InsertOne(ctx context.Context, data models.Supplier) (models.Supplier, error) {
	if data.AIMetrics == (models.SupplierAIMetrics{}) {
		data.AIMetrics = models.SupplierAIMetrics{
			ReliabilityScore:     50,
			PriceCompetitiveness: 50,
			ResponseTime:         24,
			QualityConsistency:   50,
		}
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}
