package services

import (
	"testing"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/stretchr/testify/assert"
)

func TestAggregateItemStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.ItemStatus
		want  entity.VendorStatus
	}{
		{
			name:  "all_pending",
			items: []entity.ItemStatus{entity.ItemPending, entity.ItemPending},
			want:  entity.VendorPending,
		},
		{
			name:  "all_accepted",
			items: []entity.ItemStatus{entity.ItemAccepted, entity.ItemAccepted},
			want:  entity.VendorAccepted,
		},
		{
			name:  "all_rejected",
			items: []entity.ItemStatus{entity.ItemRejected, entity.ItemRejected, entity.ItemRejected},
			want:  entity.VendorRejected,
		},
		{
			name:  "accepted_and_rejected",
			items: []entity.ItemStatus{entity.ItemAccepted, entity.ItemRejected},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "accepted_and_out_of_stock",
			items: []entity.ItemStatus{entity.ItemAccepted, entity.ItemOutOfStock},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "accepted_with_rest_pending",
			items: []entity.ItemStatus{entity.ItemAccepted, entity.ItemPending, entity.ItemPending},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "rejected_with_rest_pending",
			items: []entity.ItemStatus{entity.ItemRejected, entity.ItemPending},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "only_out_of_stock",
			items: []entity.ItemStatus{entity.ItemOutOfStock, entity.ItemOutOfStock},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "rejected_and_out_of_stock",
			items: []entity.ItemStatus{entity.ItemRejected, entity.ItemOutOfStock},
			want:  entity.VendorPartiallyAccepted,
		},
		{
			name:  "single_accepted",
			items: []entity.ItemStatus{entity.ItemAccepted},
			want:  entity.VendorAccepted,
		},
		{
			name:  "empty",
			items: nil,
			want:  entity.VendorPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateItemStatus(tt.items)
			assert.Equal(t, tt.want, got)

			// idempotence: คำนวณซ้ำจาก multiset เดิมได้ผลเดิมเสมอ
			assert.Equal(t, got, AggregateItemStatus(tt.items))
		})
	}
}

func TestAggregateVendorStatus(t *testing.T) {
	tests := []struct {
		name    string
		vendors []entity.VendorStatus
		want    entity.OrderStatus
	}{
		{
			name:    "all_pending",
			vendors: []entity.VendorStatus{entity.VendorPending, entity.VendorPending},
			want:    entity.OrderPending,
		},
		{
			name:    "all_accepted",
			vendors: []entity.VendorStatus{entity.VendorAccepted, entity.VendorAccepted},
			want:    entity.OrderCompleted,
		},
		{
			name:    "all_rejected",
			vendors: []entity.VendorStatus{entity.VendorRejected, entity.VendorRejected},
			want:    entity.OrderCancelled,
		},
		{
			name:    "accepted_and_rejected",
			vendors: []entity.VendorStatus{entity.VendorAccepted, entity.VendorRejected},
			want:    entity.OrderPartiallyCompleted,
		},
		{
			name:    "accepted_and_pending",
			vendors: []entity.VendorStatus{entity.VendorAccepted, entity.VendorPending},
			want:    entity.OrderPending,
		},
		{
			name:    "accepted_and_partially_accepted",
			vendors: []entity.VendorStatus{entity.VendorAccepted, entity.VendorPartiallyAccepted},
			want:    entity.OrderPending,
		},
		{
			name:    "rejected_and_pending",
			vendors: []entity.VendorStatus{entity.VendorRejected, entity.VendorPending},
			want:    entity.OrderPending,
		},
		{
			name:    "single_accepted",
			vendors: []entity.VendorStatus{entity.VendorAccepted},
			want:    entity.OrderCompleted,
		},
		{
			name:    "empty",
			vendors: nil,
			want:    entity.OrderPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateVendorStatus(tt.vendors)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, AggregateVendorStatus(tt.vendors))
		})
	}
}

// ทั้งสองฟังก์ชันต้อง total ทุก multiset ขนาดเล็กของ input ที่ valid ให้ค่าที่อยู่ใน enum
func TestAggregateTotality(t *testing.T) {
	itemVals := []entity.ItemStatus{
		entity.ItemPending, entity.ItemAccepted, entity.ItemRejected, entity.ItemOutOfStock,
	}
	vendorOut := map[entity.VendorStatus]bool{
		entity.VendorPending: true, entity.VendorAccepted: true,
		entity.VendorRejected: true, entity.VendorPartiallyAccepted: true,
	}
	for _, a := range itemVals {
		for _, b := range itemVals {
			for _, c := range itemVals {
				got := AggregateItemStatus([]entity.ItemStatus{a, b, c})
				assert.True(t, vendorOut[got], "unexpected vendor status %q for (%s,%s,%s)", got, a, b, c)
			}
		}
	}

	vendorVals := []entity.VendorStatus{
		entity.VendorPending, entity.VendorAccepted,
		entity.VendorRejected, entity.VendorPartiallyAccepted,
	}
	orderOut := map[entity.OrderStatus]bool{
		entity.OrderPending: true, entity.OrderCompleted: true,
		entity.OrderCancelled: true, entity.OrderPartiallyCompleted: true,
	}
	for _, a := range vendorVals {
		for _, b := range vendorVals {
			got := AggregateVendorStatus([]entity.VendorStatus{a, b})
			assert.True(t, orderOut[got], "unexpected order status %q for (%s,%s)", got, a, b)
		}
	}
}
