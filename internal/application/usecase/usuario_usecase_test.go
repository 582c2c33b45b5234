package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediya-co/autenticacion-api/internal/application/usecase"
	"github.com/crediya-co/autenticacion-api/internal/domain"
	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/crediya-co/autenticacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// fakeUsuarioRepo puerto de usuarios en memoria que registra cada llamada,
// para verificar las leyes de corte y el conteo exacto de escrituras.
type fakeUsuarioRepo struct {
	mu          sync.Mutex
	usuarios    map[int64]*entity.Usuario
	siguienteID int64

	llamadasEmail     int
	llamadasDocumento int
	llamadasSave      int
	llamadasDelete    int
}

func nuevoFakeRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario), siguienteID: 1}
}

func (f *fakeUsuarioRepo) Save(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadasSave++
	if u.ID == 0 {
		u.ID = f.siguienteID
		f.siguienteID++
	}
	copia := *u
	f.usuarios[u.ID] = &copia
	return u, nil
}

func (f *fakeUsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var lista []*entity.Usuario
	for _, u := range f.usuarios {
		lista = append(lista, u)
	}
	return lista, nil
}

func (f *fakeUsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.usuarios[id], nil
}

func (f *fakeUsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadasEmail++
	for _, u := range f.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByDocumentoIdentidad(ctx context.Context, documento string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadasDocumento++
	for _, u := range f.usuarios {
		if u.DocumentoIdentidad == documento {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadasDelete++
	delete(f.usuarios, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre el mismo repositorio.
type fakeTxRunner struct {
	repo repository.UsuarioRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.UsuarioRepository) error) error {
	return fn(f.repo)
}

func nuevoUseCase() (*usecase.UsuarioUseCase, *fakeUsuarioRepo) {
	repo := nuevoFakeRepo()
	return usecase.NewUsuarioUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

// usuarioValido construye el usuario del escenario de referencia.
func usuarioValido() *entity.Usuario {
	return &entity.Usuario{
		Nombres:            "John",
		Apellidos:          "Doe",
		FechaNacimiento:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.Local),
		Email:              "john@x.com",
		DocumentoIdentidad: "12345",
		Telefono:           "3000000000",
		Direccion:          "Calle 1 # 2-3",
		SalarioBase:        decimal.NewFromInt(2_500_000),
		Rol:                &entity.Rol{ID: 3},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardar
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardar_AsignaIDYEscribeUnaVez(t *testing.T) {
	uc, repo := nuevoUseCase()

	guardado, err := uc.Guardar(context.Background(), usuarioValido())

	require.NoError(t, err)
	assert.Equal(t, int64(1), guardado.ID, "el ID lo asigna el almacenamiento")
	assert.Equal(t, "john@x.com", guardado.Email)
	assert.Equal(t, 1, repo.llamadasSave, "exactamente una escritura por guardado exitoso")
}

func TestGuardar_EmailDuplicado_CortaSinConsultarDocumento(t *testing.T) {
	uc, repo := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)
	repo.llamadasEmail, repo.llamadasDocumento, repo.llamadasSave = 0, 0, 0

	otro := usuarioValido()
	otro.DocumentoIdentidad = "99999" // documento libre, el conflicto es solo de email
	_, err = uc.Guardar(context.Background(), otro)

	require.ErrorIs(t, err, domain.ErrEmailRegistrado)
	assert.Equal(t, "El correo electrónico ya está registrado", err.Error())
	assert.Equal(t, 1, repo.llamadasEmail)
	assert.Zero(t, repo.llamadasDocumento, "con email duplicado no se consulta el documento")
	assert.Zero(t, repo.llamadasSave, "con email duplicado no se escribe")
}

func TestGuardar_DocumentoDuplicado_NoEscribe(t *testing.T) {
	uc, repo := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)
	repo.llamadasSave = 0

	otro := usuarioValido()
	otro.Email = "jane@x.com" // email libre, el conflicto es solo de documento
	_, err = uc.Guardar(context.Background(), otro)

	require.ErrorIs(t, err, domain.ErrDocumentoRegistrado)
	assert.Zero(t, repo.llamadasSave)
}

func TestGuardar_ValidacionEnOrden_GanaElPrimerFallo(t *testing.T) {
	casos := []struct {
		nombre  string
		mutar   func(u *entity.Usuario)
		campo   string
		mensaje string
	}{
		{"nombres vacíos", func(u *entity.Usuario) { u.Nombres = "  " }, "nombres", "El nombre no puede estar vacío"},
		{"apellidos vacíos", func(u *entity.Usuario) { u.Apellidos = "" }, "apellidos", "Los apellidos no pueden estar vacíos"},
		{"email vacío", func(u *entity.Usuario) { u.Email = "" }, "email", "El email no puede estar vacío"},
		{"email sin arroba", func(u *entity.Usuario) { u.Email = "johnx.com" }, "email", "El email no es válido"},
		{"email con TLD largo", func(u *entity.Usuario) { u.Email = "john@x.abcdefgh" }, "email", "El email no es válido"},
		{"documento vacío", func(u *entity.Usuario) { u.DocumentoIdentidad = "" }, "documentoIdentidad", "El documento de identidad no puede estar vacío"},
		{"teléfono vacío", func(u *entity.Usuario) { u.Telefono = "" }, "telefono", "El teléfono no puede estar vacío"},
		{"fecha ausente", func(u *entity.Usuario) { u.FechaNacimiento = time.Time{} }, "fechaNacimiento", "La fecha de nacimiento no puede estar vacía"},
		{"salario negativo", func(u *entity.Usuario) { u.SalarioBase = decimal.RequireFromString("-0.01") }, "salarioBase", "El salario base debe estar entre 0 y 15,000,000"},
		// Con varios campos inválidos gana el primero del orden fijo.
		{"nombres y email inválidos", func(u *entity.Usuario) { u.Nombres = ""; u.Email = "x" }, "nombres", "El nombre no puede estar vacío"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			uc, repo := nuevoUseCase()
			u := usuarioValido()
			tc.mutar(u)

			_, err := uc.Guardar(context.Background(), u)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.campo, vErr.Campo)
			assert.Equal(t, tc.mensaje, vErr.Mensaje)
			assert.Zero(t, repo.llamadasEmail, "la validación ocurre antes de cualquier lectura")
			assert.Zero(t, repo.llamadasSave)
		})
	}
}

func TestGuardar_LimitesDeSalario(t *testing.T) {
	casos := []struct {
		salario string
		valido  bool
	}{
		{"0", true},
		{"15000000", true},
		{"-0.01", false},
		{"15000000.01", false},
	}
	for _, tc := range casos {
		t.Run(tc.salario, func(t *testing.T) {
			uc, _ := nuevoUseCase()
			u := usuarioValido()
			u.SalarioBase = decimal.RequireFromString(tc.salario)

			_, err := uc.Guardar(context.Background(), u)

			if tc.valido {
				assert.NoError(t, err, "ambos extremos del rango son inclusivos")
			} else {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "salarioBase", vErr.Campo)
			}
		})
	}
}

func TestGuardar_FechaNacimiento_GranularidadDeDia(t *testing.T) {
	uc, _ := nuevoUseCase()
	u := usuarioValido()
	u.FechaNacimiento = time.Now() // hoy, con hora: válido a granularidad de día
	_, err := uc.Guardar(context.Background(), u)
	assert.NoError(t, err)

	uc, _ = nuevoUseCase()
	u = usuarioValido()
	u.FechaNacimiento = time.Now().AddDate(0, 0, 1)
	_, err = uc.Guardar(context.Background(), u)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "La fecha de nacimiento no puede ser futura", vErr.Mensaje)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizar_AutoCoincidenciaPermitida(t *testing.T) {
	uc, repo := nuevoUseCase()
	guardado, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)
	repo.llamadasSave = 0

	// Mismo email y documento: las coincidencias son del propio usuario.
	guardado.Telefono = "3111111111"
	actualizado, err := uc.Actualizar(context.Background(), guardado)

	require.NoError(t, err)
	assert.Equal(t, "3111111111", actualizado.Telefono)
	assert.Equal(t, 1, repo.llamadasSave)
}

func TestActualizar_EmailDeOtroUsuario(t *testing.T) {
	uc, repo := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)

	segundo := usuarioValido()
	segundo.Email = "jane@x.com"
	segundo.DocumentoIdentidad = "99999"
	guardado, err := uc.Guardar(context.Background(), segundo)
	require.NoError(t, err)
	repo.llamadasSave = 0

	guardado.Email = "john@x.com" // email del primer usuario
	_, err = uc.Actualizar(context.Background(), guardado)

	require.ErrorIs(t, err, domain.ErrEmailRegistradoOtro)
	assert.Equal(t, "El correo electrónico ya está registrado por otro usuario", err.Error())
	assert.Zero(t, repo.llamadasSave)
}

func TestActualizar_DocumentoDeOtroUsuario(t *testing.T) {
	uc, repo := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)

	segundo := usuarioValido()
	segundo.Email = "jane@x.com"
	segundo.DocumentoIdentidad = "99999"
	guardado, err := uc.Guardar(context.Background(), segundo)
	require.NoError(t, err)
	repo.llamadasSave = 0

	guardado.DocumentoIdentidad = "12345" // documento del primer usuario
	_, err = uc.Actualizar(context.Background(), guardado)

	require.ErrorIs(t, err, domain.ErrDocumentoRegistradoOtro)
	assert.Zero(t, repo.llamadasSave)
}

func TestActualizar_AmbasVerificacionesSeEvaluanSiempre(t *testing.T) {
	uc, repo := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)

	segundo := usuarioValido()
	segundo.Email = "jane@x.com"
	segundo.DocumentoIdentidad = "99999"
	guardado, err := uc.Guardar(context.Background(), segundo)
	require.NoError(t, err)
	repo.llamadasEmail, repo.llamadasDocumento = 0, 0

	// Conflicto doble: a diferencia del guardado, aquí no hay corte y el
	// email se reporta primero.
	guardado.Email = "john@x.com"
	guardado.DocumentoIdentidad = "12345"
	_, err = uc.Actualizar(context.Background(), guardado)

	require.ErrorIs(t, err, domain.ErrEmailRegistradoOtro)
	assert.Equal(t, 1, repo.llamadasEmail)
	assert.Equal(t, 1, repo.llamadasDocumento, "el conflicto de email no evita la consulta por documento")
}

func TestActualizar_SinID(t *testing.T) {
	uc, _ := nuevoUseCase()

	_, err := uc.Actualizar(context.Background(), usuarioValido())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "id", vErr.Campo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscarPorID_AusenteNoEsError(t *testing.T) {
	uc, _ := nuevoUseCase()

	usuario, err := uc.BuscarPorID(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, usuario, "la ausencia es un resultado válido, no un fallo")
}

func TestEliminar_Idempotente(t *testing.T) {
	uc, repo := nuevoUseCase()
	guardado, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), guardado.ID))
	require.NoError(t, uc.Eliminar(context.Background(), guardado.ID), "borrar un ID inexistente termina sin error")
	assert.Equal(t, 2, repo.llamadasDelete)
}

func TestListar_ConsultaCadaVez(t *testing.T) {
	uc, _ := nuevoUseCase()
	_, err := uc.Guardar(context.Background(), usuarioValido())
	require.NoError(t, err)

	lista, err := uc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	segundo := usuarioValido()
	segundo.Email = "jane@x.com"
	segundo.DocumentoIdentidad = "99999"
	_, err = uc.Guardar(context.Background(), segundo)
	require.NoError(t, err)

	lista, err = uc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, lista, 2, "cada llamada vuelve a consultar el almacenamiento")
}
