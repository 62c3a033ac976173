package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvalencia/crm-ventas/internal/domain"
)

type ownedStub struct{ owner string }

func (s ownedStub) OwnerID() string { return s.owner }

func TestAssertOwnedBy_DuenoCorrecto_Pasa(t *testing.T) {
	err := domain.AssertOwnedBy(ownedStub{owner: "vendedor-1"}, "vendedor-1")
	assert.NoError(t, err)
}

func TestAssertOwnedBy_OtroVendedor_RetornaForbidden(t *testing.T) {
	err := domain.AssertOwnedBy(ownedStub{owner: "vendedor-1"}, "vendedor-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.EqualError(t, err, "no tienes las credenciales")
}

func TestAssertOwnedBy_RecursoNil_RetornaNotFound(t *testing.T) {
	err := domain.AssertOwnedBy(nil, "vendedor-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
