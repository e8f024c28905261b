package billing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kishanbeldas/pahana-edu/internal/application/dto"
	"github.com/kishanbeldas/pahana-edu/internal/application/ports"
	"github.com/kishanbeldas/pahana-edu/internal/domain"
	domainbilling "github.com/kishanbeldas/pahana-edu/internal/domain/billing"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
	"github.com/kishanbeldas/pahana-edu/pkg/logger"
)

// draftTTL vida máxima de un borrador abandonado. Los borradores viven solo en
// memoria de trabajo: se descartan al cancelar o al enviar con éxito, y los
// huérfanos se limpian de forma perezosa al abrir uno nuevo.
const draftTTL = 24 * time.Hour

// dueDateOffsetDays plazo por defecto de vencimiento para facturas nuevas.
const dueDateOffsetDays = 30

// ValidationError fallo de validación previo al envío. El código identifica la
// primera condición no cumplida; no se hace ninguna llamada de red.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Códigos de validación del envío, verificados en este orden estricto.
const (
	ValidationCustomerRequired = "CUSTOMER_REQUIRED"
	ValidationItemsRequired    = "ITEMS_REQUIRED"
	ValidationItemRequired     = "ITEM_REQUIRED"
)

// draftLine línea mutable de un borrador. TotalPrice se recalcula tras cada
// actualización como Quantity * UnitPrice con los valores actuales de la línea;
// un cambio posterior del precio de catálogo no la toca.
type draftLine struct {
	ItemID     *int64
	ItemCode   string
	ItemName   string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// draft factura en curso. Existe solo en la memoria del Composer; al enviar se
// convierte en un dto.BillPayload y se descarta.
type draft struct {
	ID         string
	BillID     *int64 // presente en modo edición; decide create vs update al enviar
	BillNumber string
	CustomerID *int64
	BillDate   string
	DueDate    string
	Lines      []draftLine

	// Listas de referencia cargadas al abrir; sin caché compartido entre borradores.
	Customers []entity.Customer
	Items     []entity.Item

	CreatedAt time.Time
}

// Composer mantiene los borradores de factura en curso y deriva los totales en
// cada lectura. Es seguro para uso concurrente desde los handlers.
type Composer struct {
	mu     sync.RWMutex
	drafts map[string]*draft

	bills     ports.BillGateway
	customers ports.CustomerGateway
	items     ports.ItemGateway
	log       *logger.Logger
}

// NewComposer construye el compositor de facturas.
func NewComposer(bills ports.BillGateway, customers ports.CustomerGateway, items ports.ItemGateway, log *logger.Logger) *Composer {
	return &Composer{
		drafts:    make(map[string]*draft),
		bills:     bills,
		customers: customers,
		items:     items,
		log:       log,
	}
}

// generateBillNumber genera bill-<YYYYMMDD>-<4 dígitos aleatorios>.
// La unicidad no está garantizada (no se verifica colisión); dos borradores del
// mismo día difieren solo probabilísticamente por el sufijo.
func generateBillNumber(now time.Time) string {
	return fmt.Sprintf("bill-%s-%d", now.Format("20060102"), 1000+rand.IntN(9000))
}

// Open inicializa un borrador. Con billID precarga todos los campos desde la
// factura persistida (incluido su número); sin él genera número nuevo y fija
// dueDate = billDate + 30 días. Siempre carga las listas completas de clientes
// y artículos; un fallo en cada carga es no fatal y se reporta como warning,
// dejando esa lista vacía.
func (c *Composer) Open(ctx context.Context, billID *int64) (*dto.OpenDraftResponse, error) {
	now := time.Now()

	d := &draft{
		ID:        uuid.New().String(),
		BillDate:  now.Format("2006-01-02"),
		CreatedAt: now,
	}

	var warnings []string
	customers, err := c.customers.List(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("composer: cargar clientes")
		warnings = append(warnings, "no se pudieron cargar los clientes")
		customers = nil
	}
	items, err := c.items.List(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("composer: cargar artículos")
		warnings = append(warnings, "no se pudieron cargar los artículos")
		items = nil
	}
	d.Customers = customers
	d.Items = items

	if billID != nil {
		bill, err := c.bills.GetByID(ctx, *billID)
		if err != nil {
			return nil, err
		}
		d.BillID = billID
		d.BillNumber = bill.BillNumber
		if bill.BillNumber == "" {
			d.BillNumber = generateBillNumber(now)
		}
		customerID := bill.CustomerID
		if customerID == 0 && bill.Customer != nil {
			customerID = bill.Customer.ID
		}
		if customerID != 0 {
			d.CustomerID = &customerID
		}
		if bill.BillDate != "" {
			d.BillDate = bill.BillDate
		}
		d.DueDate = bill.DueDate
		for _, bi := range bill.BillItems {
			line := draftLine{
				Quantity:   bi.Quantity,
				UnitPrice:  bi.UnitPrice,
				TotalPrice: bi.TotalPrice,
			}
			if bi.ItemID != 0 {
				itemID := bi.ItemID
				line.ItemID = &itemID
			} else if bi.Item != nil {
				itemID := bi.Item.ID
				line.ItemID = &itemID
			}
			if line.ItemID != nil {
				if ref := findItem(d.Items, *line.ItemID); ref != nil {
					line.ItemCode = ref.ItemCode
					line.ItemName = ref.Name
				}
			}
			d.Lines = append(d.Lines, line)
		}
	} else {
		d.BillNumber = generateBillNumber(now)
		d.DueDate = now.AddDate(0, 0, dueDateOffsetDays).Format("2006-01-02")
	}

	c.mu.Lock()
	c.evictExpiredLocked(now)
	c.drafts[d.ID] = d
	c.mu.Unlock()

	return &dto.OpenDraftResponse{
		Draft:     toDraftResponse(d),
		Customers: customers,
		Items:     items,
		Warnings:  warnings,
	}, nil
}

// Get devuelve el borrador con sus totales derivados.
func (c *Composer) Get(id string) (*dto.DraftResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toDraftResponse(d)
	return &resp, nil
}

// UpdateHeader actualiza cliente y fechas del borrador. El cliente debe existir
// en la lista de referencia cargada; el número de factura es inmutable una vez
// generado dentro de la sesión.
func (c *Composer) UpdateHeader(id string, in dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		if findCustomer(d.Customers, *in.CustomerID) == nil {
			return nil, domain.ErrNotFound
		}
		customerID := *in.CustomerID
		d.CustomerID = &customerID
	}
	if in.BillDate != nil {
		if !validDate(*in.BillDate) {
			return nil, domain.ErrInvalidInput
		}
		d.BillDate = *in.BillDate
	}
	if in.DueDate != nil {
		if !validDate(*in.DueDate) {
			return nil, domain.ErrInvalidInput
		}
		d.DueDate = *in.DueDate
	}
	resp := toDraftResponse(d)
	return &resp, nil
}

// AddLine agrega una línea en blanco (sin artículo, cantidad 1, precio 0).
// No hay límite superior de líneas.
func (c *Composer) AddLine(id string) (*dto.DraftResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.Lines = append(d.Lines, draftLine{
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  decimal.Zero,
		TotalPrice: decimal.Zero,
	})
	resp := toDraftResponse(d)
	return &resp, nil
}

// UpdateLine actualiza los campos presentes de la línea en la posición dada.
// Seleccionar un artículo toma snapshot de su precio de catálogo vigente; el
// precio queda luego editable sin re-sincronización. Tras cualquier cambio el
// total de la línea se recalcula siempre como cantidad * precio con los valores
// actuales: una cantidad borrada llega como 0 y deja el total en 0, nunca se
// conserva un total obsoleto.
func (c *Composer) UpdateLine(id string, index int, in dto.UpdateDraftLineRequest) (*dto.DraftResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if index < 0 || index >= len(d.Lines) {
		return nil, domain.ErrNotFound
	}
	line := &d.Lines[index]

	if in.ItemID != nil {
		ref := findItem(d.Items, *in.ItemID)
		if ref == nil {
			return nil, domain.ErrNotFound
		}
		itemID := ref.ID
		line.ItemID = &itemID
		line.ItemCode = ref.ItemCode
		line.ItemName = ref.Name
		line.UnitPrice = ref.UnitPrice
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.UnitPrice = *in.UnitPrice
	}
	line.TotalPrice = domainbilling.LineTotal(line.Quantity, line.UnitPrice)

	resp := toDraftResponse(d)
	return &resp, nil
}

// RemoveLine elimina la línea en la posición dada. La confirmación, si existe,
// es asunto de la capa de presentación.
func (c *Composer) RemoveLine(id string, index int) (*dto.DraftResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if index < 0 || index >= len(d.Lines) {
		return nil, domain.ErrNotFound
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	resp := toDraftResponse(d)
	return &resp, nil
}

// Submit valida el borrador y lo envía al API externo (create si es nuevo,
// update si fue precargado). Las condiciones se verifican en orden estricto
// (cliente → líneas no vacías → primera fila sin artículo, nombrada en base 1)
// y la primera que falle corta sin hacer ninguna llamada de red. Si el API
// rechaza, el borrador se conserva intacto; solo un envío exitoso lo descarta.
func (c *Composer) Submit(ctx context.Context, id string) (*entity.Bill, error) {
	c.mu.Lock()
	d, ok := c.drafts[id]
	if !ok {
		c.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if d.CustomerID == nil {
		c.mu.Unlock()
		return nil, &ValidationError{Code: ValidationCustomerRequired, Message: "seleccione un cliente"}
	}
	if len(d.Lines) == 0 {
		c.mu.Unlock()
		return nil, &ValidationError{Code: ValidationItemsRequired, Message: "agregue al menos un artículo"}
	}
	for i := range d.Lines {
		if d.Lines[i].ItemID == nil {
			c.mu.Unlock()
			return nil, &ValidationError{
				Code:    ValidationItemRequired,
				Message: fmt.Sprintf("seleccione un artículo en la fila %d", i+1),
			}
		}
	}
	payload := dto.BillPayload{
		BillNumber: d.BillNumber,
		CustomerID: *d.CustomerID,
		BillDate:   d.BillDate,
		DueDate:    d.DueDate,
		BillItems:  make([]dto.BillItemPayload, 0, len(d.Lines)),
	}
	for _, line := range d.Lines {
		payload.BillItems = append(payload.BillItems, dto.BillItemPayload{
			ItemID:     *line.ItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}
	billID := d.BillID
	c.mu.Unlock()

	// La llamada de red va fuera del lock: un envío lento no debe bloquear
	// los demás borradores.
	var (
		bill *entity.Bill
		err  error
	)
	if billID != nil {
		bill, err = c.bills.Update(ctx, *billID, payload)
	} else {
		bill, err = c.bills.Create(ctx, payload)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	delete(c.drafts, id)
	c.mu.Unlock()
	return bill, nil
}

// Discard descarta el borrador (cancelar).
func (c *Composer) Discard(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.drafts, id)
	return nil
}

// evictExpiredLocked limpia borradores huérfanos. Requiere c.mu tomado.
func (c *Composer) evictExpiredLocked(now time.Time) {
	for id, d := range c.drafts {
		if now.Sub(d.CreatedAt) > draftTTL {
			delete(c.drafts, id)
		}
	}
}

func toDraftResponse(d *draft) dto.DraftResponse {
	lines := make([]dto.DraftLineResponse, 0, len(d.Lines))
	lineTotals := make([]decimal.Decimal, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, dto.DraftLineResponse{
			ItemID:     line.ItemID,
			ItemCode:   line.ItemCode,
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
		lineTotals = append(lineTotals, line.TotalPrice)
	}
	totals := domainbilling.Compute(lineTotals)
	return dto.DraftResponse{
		ID:          d.ID,
		BillID:      d.BillID,
		BillNumber:  d.BillNumber,
		CustomerID:  d.CustomerID,
		BillDate:    d.BillDate,
		DueDate:     d.DueDate,
		BillItems:   lines,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
	}
}

func findItem(items []entity.Item, id int64) *entity.Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func findCustomer(customers []entity.Customer, id int64) *entity.Customer {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
