// Package supplierdto - DTO cho domain supplier.
package supplierdto

import (
	models "group_commerce/internal/api/supplier/models"
)

// SupplierCreateInput đầu vào tạo nhà cung cấp.
type SupplierCreateInput struct {
	Name            string                   `json:"name" validate:"required,min=2,no_xss" bson:"name"`
	ContactPerson   string                   `json:"contactPerson,omitempty" validate:"omitempty,no_xss" bson:"contactPerson"`
	BusinessDetails string                   `json:"businessDetails,omitempty" bson:"businessDetails"`
	Address         models.SupplierAddress   `json:"address,omitempty" bson:"address"`
	ServiceAreas    []string                 `json:"serviceAreas,omitempty" bson:"serviceAreas"`
	Categories      []string                 `json:"categories,omitempty" bson:"categories"`
	Products        []models.SupplierProduct `json:"products,omitempty" bson:"products"`
	IsVerified      bool                     `json:"isVerified,omitempty" bson:"isVerified"`
}

// SupplierUpdateInput đầu vào cập nhật nhà cung cấp.
type SupplierUpdateInput struct {
	Name            string                   `json:"name,omitempty" validate:"omitempty,min=2,no_xss"`
	ContactPerson   string                   `json:"contactPerson,omitempty"`
	BusinessDetails string                   `json:"businessDetails,omitempty"`
	Address         models.SupplierAddress   `json:"address,omitempty"`
	ServiceAreas    []string                 `json:"serviceAreas,omitempty"`
	Categories      []string                 `json:"categories,omitempty"`
	Products        []models.SupplierProduct `json:"products,omitempty"`
	IsVerified      bool                     `json:"isVerified,omitempty"`
}
