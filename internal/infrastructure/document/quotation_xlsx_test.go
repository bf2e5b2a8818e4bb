package document

import (
	"bytes"
	"testing"
	"time"

	"autopaint_quotation/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeNames map[string]string

func (n fakeNames) ServiceName(id string) string       { return n[id] }
func (n fakeNames) RemovablePartName(id string) string { return n[id] }

func testRecord() entities.QuotationRecord {
	return entities.QuotationRecord{
		Quotation: entities.Quotation{
			ID:          "7f1c2d3e-aaaa-bbbb-cccc-000000000001",
			CustomerID:  "c1",
			ServiceType: entities.ServiceTypeSpotPainting,
			TotalAmount: 680000,
			Status:      entities.QuotationStatusDraft,
			CreatedAt:   time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
			QuotationData: entities.QuotationData{
				ServiceType: entities.ServiceTypeSpotPainting,
				Items: []entities.QuotationItem{
					{CarPartID: "hood", CarPartName: "Nắp capo", SelectedServices: []string{"extra-polish"}, SelectedRemovableParts: []string{"emblem"}, Price: 630000},
					{CarPartID: "door", CarPartName: "Cửa trước", SelectedServices: []string{}, SelectedRemovableParts: []string{}, Price: 50000},
				},
			},
		},
		Customer: entities.CustomerSummary{FullName: "Nguyen Van A", Phone: "0901234567", CarName: "Toyota Vios", CarYear: "2020", LicensePlate: "51A-12345"},
	}
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(SheetName, ref, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestRenderQuotation(t *testing.T) {
	f, err := RenderQuotation(testRecord(), fakeNames{"extra-polish": "Đánh bóng", "emblem": "Logo"})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "BÁO GIÁ DỊCH VỤ SƠN XE", cell(t, f, "A1"))
	assert.Equal(t, "Ngày lập: 09/03/2024", cell(t, f, "A2"))
	assert.Equal(t, "Nguyen Van A", cell(t, f, "B5"))
	assert.Equal(t, "51A-12345", cell(t, f, "B7"))
	assert.Equal(t, "Sơn Món", cell(t, f, "E7"))
	assert.Equal(t, "Nháp", cell(t, f, "B9"))

	assert.Equal(t, "STT", cell(t, f, "A12"))
	assert.Equal(t, "1", cell(t, f, "A13"))
	assert.Equal(t, "Nắp capo", cell(t, f, "B13"))
	assert.Equal(t, "Đánh bóng", cell(t, f, "C13"))
	assert.Equal(t, "Logo", cell(t, f, "D13"))
	assert.Equal(t, "630000", cell(t, f, "E13"))
	assert.Equal(t, "Cửa trước", cell(t, f, "B14"))
	assert.Equal(t, "", cell(t, f, "C14"))

	assert.Equal(t, "TỔNG CỘNG", cell(t, f, "A15"))
	assert.Equal(t, "680000", cell(t, f, "E15"))
	assert.Equal(t, "ĐIỀU KHOẢN & GHI CHÚ", cell(t, f, "A17"))
	assert.Equal(t, "• Giá đã bao gồm VAT 10%", cell(t, f, "A19"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	assert.NotZero(t, buf.Len())
}

func TestRenderQuotation_RawIDsWithoutNames(t *testing.T) {
	f, err := RenderQuotation(testRecord(), nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "extra-polish", cell(t, f, "C13"))
	assert.Equal(t, "emblem", cell(t, f, "D13"))
}

func TestRenderQuotation_NoItems(t *testing.T) {
	rec := testRecord()
	rec.QuotationData.Items = nil
	rec.TotalAmount = 0

	f, err := RenderQuotation(rec, nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "TỔNG CỘNG", cell(t, f, "A13"))
	assert.Equal(t, "0", cell(t, f, "E13"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "bao-gia-20240309-7f1c2d3e.xlsx", Filename(testRecord()))
}
