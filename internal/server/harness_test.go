package server

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	"github.com/kossaiRedou/EasInvoice/internal/auth/session"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/kossaiRedou/EasInvoice/internal/config"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
	profiledomain "github.com/kossaiRedou/EasInvoice/internal/profile/domain"
	"github.com/kossaiRedou/EasInvoice/internal/render"
	"go.uber.org/zap"
)

const (
	testUserID    = snowflake.ID(42)
	testSessionID = "session-token"
)

type fakeAuthService struct {
	registerCalls int
	loginCalls    int
	logoutCalls   int
}

func (f *fakeAuthService) Register(ctx context.Context, req authdomain.RegisterRequest) (authdomain.User, error) {
	f.registerCalls++
	_ = ctx
	return authdomain.User{ID: testUserID, Username: req.Username, Email: req.Email}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (authdomain.LoginResult, error) {
	f.loginCalls++
	_ = ctx
	return authdomain.LoginResult{
		User:      authdomain.User{ID: testUserID, Username: req.Username},
		RawToken:  testSessionID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	f.logoutCalls++
	_ = ctx
	_ = rawToken
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (authdomain.User, error) {
	_ = ctx
	if rawToken != testSessionID {
		return authdomain.User{}, authdomain.ErrInvalidSession
	}
	return authdomain.User{ID: testUserID, Username: "demo"}, nil
}

type fakeInvoiceService struct {
	created  *invoicedomain.Invoice
	lastForm forms.InvoiceForm
	getErr   error
	stored   *invoicedomain.Invoice
}

func (f *fakeInvoiceService) Create(ctx context.Context, userID snowflake.ID, form forms.InvoiceForm) (*invoicedomain.Invoice, error) {
	_ = ctx
	f.lastForm = form
	if f.created == nil {
		f.created = &invoicedomain.Invoice{
			ID:            snowflake.ID(1001),
			UserID:        userID,
			InvoiceNumber: form.InvoiceNumber,
			InvoiceDate:   form.InvoiceDate,
			DueDate:       form.DueDate,
		}
	}
	return f.created, nil
}

func (f *fakeInvoiceService) GetByID(ctx context.Context, userID snowflake.ID, id string) (*invoicedomain.Invoice, error) {
	_ = ctx
	_ = userID
	_ = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeInvoiceService) List(ctx context.Context, userID snowflake.ID) ([]invoicedomain.Invoice, error) {
	_ = ctx
	_ = userID
	if f.stored == nil {
		return nil, nil
	}
	return []invoicedomain.Invoice{*f.stored}, nil
}

func (f *fakeInvoiceService) UpdateStatus(ctx context.Context, userID snowflake.ID, id string, status invoicedomain.Status) (*invoicedomain.Invoice, error) {
	_ = ctx
	_ = userID
	_ = id
	if !invoicedomain.ValidStatus(status) {
		return nil, invoicedomain.ErrInvalidStatus
	}
	if f.stored == nil {
		return nil, invoicedomain.ErrNotFound
	}
	updated := *f.stored
	updated.Status = status
	return &updated, nil
}

func (f *fakeInvoiceService) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	_ = ctx
	_ = userID
	_ = id
	if f.stored == nil {
		return invoicedomain.ErrNotFound
	}
	f.stored = nil
	return nil
}

type fakeLabelService struct {
	created   *labeldomain.Label
	stored    *labeldomain.Label
	pdfMarked int
}

func (f *fakeLabelService) Create(ctx context.Context, userID snowflake.ID, form forms.LabelForm) (*labeldomain.Label, error) {
	_ = ctx
	if f.created == nil {
		f.created = &labeldomain.Label{
			ID:           snowflake.ID(2002),
			UserID:       userID,
			OrderNumber:  form.OrderNumber,
			ShippingDate: form.ShippingDate,
			Carrier:      form.Carrier,
		}
	}
	return f.created, nil
}

func (f *fakeLabelService) GetByID(ctx context.Context, userID snowflake.ID, id string) (*labeldomain.Label, error) {
	_ = ctx
	_ = userID
	_ = id
	if f.stored == nil {
		return nil, labeldomain.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeLabelService) List(ctx context.Context, userID snowflake.ID) ([]labeldomain.Label, error) {
	_ = ctx
	_ = userID
	if f.stored == nil {
		return nil, nil
	}
	return []labeldomain.Label{*f.stored}, nil
}

func (f *fakeLabelService) MarkPDFGenerated(ctx context.Context, userID snowflake.ID, id string) error {
	_ = ctx
	_ = userID
	_ = id
	f.pdfMarked++
	return nil
}

func (f *fakeLabelService) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	_ = ctx
	_ = userID
	_ = id
	if f.stored == nil {
		return labeldomain.ErrNotFound
	}
	f.stored = nil
	return nil
}

type fakeClientService struct {
	stored *clientdomain.Client
}

func (f *fakeClientService) Create(ctx context.Context, userID snowflake.ID, req clientdomain.CreateRequest) (*clientdomain.Client, error) {
	_ = ctx
	if req.Name == "" || req.Address == "" {
		return nil, clientdomain.ErrInvalidClient
	}
	f.stored = &clientdomain.Client{
		ID:      snowflake.ID(3003),
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
	return f.stored, nil
}

func (f *fakeClientService) GetByID(ctx context.Context, userID snowflake.ID, id string) (*clientdomain.Client, error) {
	_ = ctx
	_ = userID
	if f.stored == nil || f.stored.ID.String() != id {
		return nil, clientdomain.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeClientService) List(ctx context.Context, userID snowflake.ID) ([]clientdomain.Client, error) {
	_ = ctx
	_ = userID
	if f.stored == nil {
		return nil, nil
	}
	return []clientdomain.Client{*f.stored}, nil
}

func (f *fakeClientService) Delete(ctx context.Context, userID snowflake.ID, id string) error {
	_ = ctx
	_ = userID
	if f.stored == nil || f.stored.ID.String() != id {
		return clientdomain.ErrNotFound
	}
	f.stored = nil
	return nil
}

type fakeProfileService struct {
	stored *profiledomain.UserProfile
}

func (f *fakeProfileService) Get(ctx context.Context, userID snowflake.ID) (*profiledomain.UserProfile, error) {
	_ = ctx
	_ = userID
	return f.stored, nil
}

func (f *fakeProfileService) Upsert(ctx context.Context, userID snowflake.ID, req profiledomain.UpdateRequest) (*profiledomain.UserProfile, error) {
	_ = ctx
	f.stored = &profiledomain.UserProfile{
		ID:          snowflake.ID(4004),
		UserID:      userID,
		CompanyName: req.CompanyName,
		Address:     req.Address,
		City:        req.City,
		Email:       req.Email,
		SIRET:       req.SIRET,
		RCS:         req.RCS,
		IsEI:        req.IsEI,
		Phone:       req.Phone,
	}
	return f.stored, nil
}

type fakePDFProvider struct {
	invoiceCalls int
	labelCalls   int
	err          error
}

func (f *fakePDFProvider) GenerateInvoice(ctx context.Context, _ *invoicedomain.Invoice) (io.Reader, error) {
	_ = ctx
	f.invoiceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return bytes.NewReader([]byte("%PDF-1.4 test")), nil
}

func (f *fakePDFProvider) GenerateLabel(ctx context.Context, _ *labeldomain.Label) (io.Reader, error) {
	_ = ctx
	f.labelCalls++
	if f.err != nil {
		return nil, f.err
	}
	return bytes.NewReader([]byte("%PDF-1.4 test")), nil
}

type testFixture struct {
	server  *Server
	authsvc *fakeAuthService
	invoice *fakeInvoiceService
	label   *fakeLabelService
	client  *fakeClientService
	profile *fakeProfileService
	pdf     *fakePDFProvider
}

func newTestServer() *testFixture {
	cfg := config.Config{Environment: "test", ListenAddr: ":0"}
	f := &testFixture{
		authsvc: &fakeAuthService{},
		invoice: &fakeInvoiceService{},
		label:   &fakeLabelService{},
		client:  &fakeClientService{},
		profile: &fakeProfileService{},
		pdf:     &fakePDFProvider{},
	}
	f.server = NewServer(ServerParams{
		Gin:        NewEngine(cfg, zap.NewNop()),
		Cfg:        cfg,
		Authsvc:    f.authsvc,
		Sessions:   session.NewManager(cfg),
		InvoiceSvc: f.invoice,
		LabelSvc:   f.label,
		ClientSvc:  f.client,
		ProfileSvc: f.profile,
		PDFSvc:     f.pdf,
		Renderer:   render.New(),
	})
	return f
}
