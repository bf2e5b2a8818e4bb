package document

import (
	"fmt"
	"strings"
	"time"

	"autopaint_quotation/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Báo giá"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	itemsHeaderRow = 12
)

var itemHeaders = []string{"STT", "Tên hạng mục", "Dịch vụ bổ sung", "Tháo lắp bộ phận", "Đơn giá (VNĐ)"}

var itemColWidths = []float64{6, 36, 32, 28, 18}

// Terms are printed under the item table. They carry no pricing semantics.
var Terms = []string{
	"Báo giá có hiệu lực trong 15 ngày kể từ ngày lập",
	"Giá đã bao gồm VAT 10%",
	"Thời gian thực hiện: 3-5 ngày làm việc (tùy theo khối lượng công việc)",
	"Bảo hành sơn: 6 tháng đối với lỗi kỹ thuật",
	"Khách hàng vui lòng thanh toán 50% trước khi bắt đầu công việc",
	"Garage không chịu trách nhiệm đối với đồ dùng cá nhân để trong xe",
}

// Names resolves ids stored on quotation items to display names. A nil
// Names prints the raw ids.
type Names interface {
	ServiceName(id string) string
	RemovablePartName(id string) string
}

// Filename is the attachment name of a rendered quotation.
func Filename(rec entities.QuotationRecord) string {
	created := rec.CreatedAt
	if created.IsZero() {
		created = rec.QuotationData.CreatedAt
	}
	id := rec.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("bao-gia-%s-%s.xlsx", created.Format("20060102"), id)
}

// RenderQuotation lays out a printable quotation: customer block, vehicle
// block, the ordered item table with its total, and the terms block.
// The caller closes the returned file.
func RenderQuotation(rec entities.QuotationRecord, names Names) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	r := &renderer{f: f, names: names}
	r.header(rec)
	r.customer(rec)
	last := r.items(rec)
	r.terms(last + 2)

	if r.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("render quotation %s: %w", rec.ID, r.err)
	}
	return f, nil
}

type renderer struct {
	f     *excelize.File
	names Names
	err   error
}

func (r *renderer) set(cell string, v any) {
	if r.err != nil {
		return
	}
	r.err = r.f.SetCellValue(SheetName, cell, v)
}

func (r *renderer) style(from, to string, s *excelize.Style) {
	if r.err != nil {
		return
	}
	id, err := r.f.NewStyle(s)
	if err != nil {
		r.err = err
		return
	}
	r.err = r.f.SetCellStyle(SheetName, from, to, id)
}

func (r *renderer) merge(from, to string) {
	if r.err != nil {
		return
	}
	r.err = r.f.MergeCell(SheetName, from, to)
}

func (r *renderer) header(rec entities.QuotationRecord) {
	r.set("A1", "BÁO GIÁ DỊCH VỤ SƠN XE")
	r.merge("A1", "E1")
	r.style("A1", "E1", &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "#2563EB"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	created := rec.CreatedAt
	if created.IsZero() {
		created = rec.QuotationData.CreatedAt
	}
	r.set("A2", "Ngày lập: "+formatDate(created))
	r.merge("A2", "E2")
	r.style("A2", "E2", &excelize.Style{Alignment: &excelize.Alignment{Horizontal: "center"}})
}

func (r *renderer) customer(rec entities.QuotationRecord) {
	c := rec.Customer
	section := &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}

	r.set("A4", "THÔNG TIN KHÁCH HÀNG")
	r.style("A4", "A4", section)
	r.set("D4", "THÔNG TIN XE")
	r.style("D4", "D4", section)

	rows := []struct{ label, value, vlabel, vvalue string }{
		{"Họ và tên:", c.FullName, "Tên xe:", c.CarName},
		{"Số điện thoại:", c.Phone, "Đời xe:", c.CarYear},
		{"Biển số xe:", c.LicensePlate, "Loại dịch vụ:", rec.ServiceType.DisplayName()},
	}
	for i, row := range rows {
		n := 5 + i
		r.set(fmt.Sprintf("A%d", n), row.label)
		r.set(fmt.Sprintf("B%d", n), row.value)
		r.set(fmt.Sprintf("D%d", n), row.vlabel)
		r.set(fmt.Sprintf("E%d", n), row.vvalue)
	}

	r.set("A9", "Trạng thái:")
	r.set("B9", rec.Status.DisplayName())
	r.set("A10", "CHI TIẾT BÁO GIÁ")
	r.style("A10", "A10", section)
}

// items writes the table and returns the row of the total line.
func (r *renderer) items(rec entities.QuotationRecord) int {
	for i, h := range itemHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		r.set(fmt.Sprintf("%s%d", col, itemsHeaderRow), h)
		if r.err == nil {
			r.err = r.f.SetColWidth(SheetName, col, col, itemColWidths[i])
		}
	}
	r.style(fmt.Sprintf("A%d", itemsHeaderRow), fmt.Sprintf("E%d", itemsHeaderRow), &excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})

	money := "#,##0"
	row := itemsHeaderRow
	for i, it := range rec.QuotationData.Items {
		row = itemsHeaderRow + 1 + i
		r.set(fmt.Sprintf("A%d", row), i+1)
		r.set(fmt.Sprintf("B%d", row), it.CarPartName)
		r.set(fmt.Sprintf("C%d", row), r.join(it.SelectedServices, r.serviceName))
		r.set(fmt.Sprintf("D%d", row), r.join(it.SelectedRemovableParts, r.removableName))
		r.set(fmt.Sprintf("E%d", row), it.Price)
	}
	if row > itemsHeaderRow {
		r.style(fmt.Sprintf("E%d", itemsHeaderRow+1), fmt.Sprintf("E%d", row), &excelize.Style{CustomNumFmt: &money})
	}

	total := row + 1
	r.set(fmt.Sprintf("A%d", total), "TỔNG CỘNG")
	r.merge(fmt.Sprintf("A%d", total), fmt.Sprintf("D%d", total))
	r.set(fmt.Sprintf("E%d", total), rec.TotalAmount)
	r.style(fmt.Sprintf("A%d", total), fmt.Sprintf("E%d", total), &excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		CustomNumFmt: &money,
	})
	return total
}

func (r *renderer) terms(start int) {
	r.set(fmt.Sprintf("A%d", start), "ĐIỀU KHOẢN & GHI CHÚ")
	r.style(fmt.Sprintf("A%d", start), fmt.Sprintf("A%d", start), &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	for i, t := range Terms {
		r.set(fmt.Sprintf("A%d", start+1+i), "• "+t)
	}
}

func (r *renderer) serviceName(id string) string {
	if r.names == nil {
		return id
	}
	return r.names.ServiceName(id)
}

func (r *renderer) removableName(id string) string {
	if r.names == nil {
		return id
	}
	return r.names.RemovablePartName(id)
}

func (r *renderer) join(ids []string, name func(string) string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, name(id))
	}
	return strings.Join(out, ", ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
