package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/domain"
	"shopdesk/internal/services"
	"shopdesk/internal/store"
)

func newClientSvc() *services.ClientService {
	return services.NewClientService(store.New[string, domain.Client](), services.NoDelay)
}

func TestClientCreateRequiresNameAndEmail(t *testing.T) {
	svc := newClientSvc()
	ctx := context.Background()

	_, err := svc.Create(ctx, services.ClientForm{Name: "", Email: "nope"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"name", "email"}, ve.Fields)

	cl, err := svc.Create(ctx, services.ClientForm{
		Name: "Ana Souza", Email: "ana.souza@example.com", Phone: "+55 11 91234-5678",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cl.ID)
	assert.Equal(t, "ana.souza@example.com", cl.Email)
}

func TestClientUpdateValidatesPatchedEmail(t *testing.T) {
	svc := newClientSvc()
	ctx := context.Background()

	cl, err := svc.Create(ctx, services.ClientForm{Name: "Bruno", Email: "bruno@example.com"})
	require.NoError(t, err)

	bad := "not-an-address"
	_, err = svc.Update(ctx, cl.ID, services.ClientPatch{Email: &bad})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)

	// a failed update must not have touched the record
	got, ok, err := svc.GetByID(ctx, cl.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bruno@example.com", got.Email)

	phone := "+55 21 99876-5432"
	upd, err := svc.Update(ctx, cl.ID, services.ClientPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, upd.Phone)
	assert.Equal(t, cl.Email, upd.Email)
}

func TestClientSearchMatchesAnyField(t *testing.T) {
	svc := newClientSvc()
	ctx := context.Background()

	ana, err := svc.Create(ctx, services.ClientForm{
		Name: "Ana Souza", Email: "ana.souza@example.com", Address: "Rua das Flores 120",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, services.ClientForm{
		Name: "Bruno Lima", Email: "bruno.lima@example.com", Address: "Av. Atlântica 500",
	})
	require.NoError(t, err)

	out, err := svc.Search(ctx, "FLORES")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ana.ID, out[0].ID)

	all, err := svc.Search(ctx, "example.com")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
