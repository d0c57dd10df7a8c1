package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/document"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

var errDriver = errors.New(`pq: relation "productos" does not exist`)

type memRepo[T any] struct {
	mu   sync.Mutex
	rows map[int64]T
	next int64
	id   func(*T) *int64
	fail error
}

func newMemRepo[T any](id func(*T) *int64) *memRepo[T] {
	return &memRepo[T]{rows: map[int64]T{}, id: id}
}

func (r *memRepo[T]) Create(_ context.Context, e *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.next++
	*r.id(e) = r.next
	r.rows[r.next] = *e
	return nil
}

func (r *memRepo[T]) List(context.Context) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	var out []*T
	for _, e := range r.sorted() {
		e := e
		out = append(out, &e)
	}
	return out, nil
}

func (r *memRepo[T]) GetByID(_ context.Context, id int64) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memRepo[T]) Update(_ context.Context, id int64, e *T) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return 0, r.fail
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	*r.id(e) = id
	r.rows[id] = *e
	return 1, nil
}

func (r *memRepo[T]) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return 0, r.fail
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

// sorted devuelve copias ordenadas por id. El llamador debe tener el lock.
func (r *memRepo[T]) sorted() []T {
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[id])
	}
	return out
}

func (r *memRepo[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted()
}

type memProductRepo struct {
	*memRepo[entity.Product]
}

func (r *memProductRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Product, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	for _, p := range r.snapshot() {
		if p.Codigo == codigo {
			return &p, nil
		}
	}
	return nil, nil
}

type memSaleRepo struct {
	*memRepo[entity.Sale]
}

func (r *memSaleRepo) MaxID(context.Context) (int64, error) {
	if r.fail != nil {
		return 0, r.fail
	}
	var max int64
	for _, s := range r.snapshot() {
		if s.ID > max {
			max = s.ID
		}
	}
	return max, nil
}

// memJoinRepo reproduce el inner join de facturaciones sobre los repos en memoria.
type memJoinRepo struct {
	sales    *memSaleRepo
	clients  *memRepo[entity.Client]
	details  *memRepo[entity.SaleDetail]
	products *memProductRepo
}

func (r *memJoinRepo) ListRows(ctx context.Context) ([]entity.InvoiceRow, error) {
	return r.rows(ctx, 0)
}

func (r *memJoinRepo) ListRowsBySale(ctx context.Context, saleID int64) ([]entity.InvoiceRow, error) {
	return r.rows(ctx, saleID)
}

func (r *memJoinRepo) rows(ctx context.Context, only int64) ([]entity.InvoiceRow, error) {
	if r.sales.fail != nil {
		return nil, r.sales.fail
	}
	sales := r.sales.snapshot()
	sort.SliceStable(sales, func(i, j int) bool {
		if !sales[i].Fecha.Equal(sales[j].Fecha.Time) {
			return sales[i].Fecha.After(sales[j].Fecha.Time)
		}
		return sales[i].ID > sales[j].ID
	})

	var out []entity.InvoiceRow
	for _, s := range sales {
		if only != 0 && s.ID != only {
			continue
		}
		c, _ := r.clients.GetByID(ctx, s.Cliente)
		if c == nil {
			continue
		}
		for _, d := range r.details.snapshot() {
			if d.IDVenta != s.ID {
				continue
			}
			p, _ := r.products.GetByCodigo(ctx, d.CodPro)
			if p == nil {
				continue
			}
			out = append(out, entity.InvoiceRow{
				VentaID: s.ID, ClienteID: c.ID, ClienteNombre: c.Nombre, ClienteDPI: c.DPI,
				Vendedor: s.Vendedor, Total: s.Total, Fecha: s.Fecha,
				CodPro: d.CodPro, Cantidad: d.Cantidad, Precio: d.Precio,
				ProductoDescripcion: p.Descripcion, Marca: p.Marca, Color: p.Color,
			})
		}
	}
	return out, nil
}

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) ListByUsuario(_ context.Context, usuario string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Usuario == usuario {
			out = append(out, u)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	products *memProductRepo
	sales    *memSaleRepo
	clients  *memRepo[entity.Client]
	details  *memRepo[entity.SaleDetail]
	issuers  *memIssuerRepo
	users    *memUserRepo
}

type memIssuerRepo struct {
	*memRepo[entity.IssuerConfig]
}

func (r *memIssuerRepo) First(context.Context) (*entity.IssuerConfig, error) {
	all := r.snapshot()
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Nop()

	env := &testEnv{
		products: &memProductRepo{newMemRepo(func(p *entity.Product) *int64 { return &p.ID })},
		sales:    &memSaleRepo{newMemRepo(func(s *entity.Sale) *int64 { return &s.ID })},
		clients:  newMemRepo(func(c *entity.Client) *int64 { return &c.ID }),
		details:  newMemRepo(func(d *entity.SaleDetail) *int64 { return &d.ID }),
		issuers:  &memIssuerRepo{newMemRepo(func(c *entity.IssuerConfig) *int64 { return &c.ID })},
		users:    &memUserRepo{},
	}
	suppliers := newMemRepo(func(s *entity.Supplier) *int64 { return &s.ID })
	join := &memJoinRepo{sales: env.sales, clients: env.clients, details: env.details, products: env.products}

	metrics, err := apphttp.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(log))
	app.Use(metrics.Middleware())

	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "ventas-api-test",
		ProductUC:   usecase.NewProductUseCase(env.products, log),
		SupplierUC:  usecase.NewResourceUseCase[entity.Supplier]("proveedor", suppliers, log),
		ClientUC:    usecase.NewResourceUseCase[entity.Client]("clientes", env.clients, log),
		ConfigUC:    usecase.NewResourceUseCase[entity.IssuerConfig]("config", env.issuers, log),
		SaleUC:      usecase.NewSaleUseCase(env.sales, log),
		DetailUC:    usecase.NewResourceUseCase[entity.SaleDetail]("detalle", env.details, log),
		InvoiceUC: billing.NewInvoiceUseCase(join, env.issuers, 0,
			pdf.NewMarotoPDFGenerator(), document.NewXMLBuilderService(), log),
		AuthUC:  auth.NewAuthUseCase(env.users, auth.Config{}, log),
		Metrics: metrics,
		OpenAPI: func() (string, error) { return `{"openapi":"3.0.0"}`, nil },
	})
	env.app = app
	return env
}

func (e *testEnv) addUser(t *testing.T, id int64, usuario, pass string) {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.MinCost)
	require.NoError(t, err)
	e.users.users = append(e.users.users, &entity.User{ID: id, Usuario: usuario, Pass: string(h)})
}

// do lanza la petición y devuelve status y cuerpo.
func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
