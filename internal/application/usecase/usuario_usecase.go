package usecase

import (
	"context"
	"sync"

	"github.com/crediya-co/autenticacion-api/internal/domain"
	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/crediya-co/autenticacion-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio de usuarios atado a una transacción.
// Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(usuarios repository.UsuarioRepository) error) error
}

// UsuarioUseCase aplica las reglas de negocio de usuarios: validación de
// campos, unicidad de email y documento, y orquestación de la persistencia.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
	tx       TxRunner
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia y
// el runner transaccional.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, tx TxRunner) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, tx: tx}
}

// Guardar registra un nuevo usuario. Primero valida los campos en orden (gana
// el primer fallo); después, dentro de una transacción, verifica unicidad en
// secuencia con corte: si el email ya existe no se consulta el documento, y
// si el documento ya existe no se escribe. Devuelve el usuario persistido con
// ID asignado, auditoría y rol rehidratado.
func (uc *UsuarioUseCase) Guardar(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error) {
	if err := validarUsuario(usuario); err != nil {
		return nil, err
	}

	var guardado *entity.Usuario
	err := uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository) error {
		porEmail, err := usuarios.GetByEmail(ctx, usuario.Email)
		if err != nil {
			return err
		}
		if porEmail != nil {
			return domain.ErrEmailRegistrado
		}
		porDocumento, err := usuarios.GetByDocumentoIdentidad(ctx, usuario.DocumentoIdentidad)
		if err != nil {
			return err
		}
		if porDocumento != nil {
			return domain.ErrDocumentoRegistrado
		}
		guardado, err = usuarios.Save(ctx, usuario)
		return err
	})
	if err != nil {
		return nil, err
	}
	return guardado, nil
}

// Actualizar reemplaza por completo un usuario existente, identificado por su
// ID. Las dos verificaciones de unicidad se evalúan siempre y en paralelo
// (sin corte); una coincidencia del propio usuario nunca es conflicto. Si las
// dos fallan, se reporta primero el conflicto de email.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error) {
	if usuario.ID == 0 {
		return nil, &domain.ValidationError{Campo: "id", Mensaje: "El id del usuario es requerido para actualizar"}
	}

	var (
		porEmail, porDocumento *entity.Usuario
		errEmail, errDocumento error
		wg                     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		porEmail, errEmail = uc.usuarios.GetByEmail(ctx, usuario.Email)
	}()
	go func() {
		defer wg.Done()
		porDocumento, errDocumento = uc.usuarios.GetByDocumentoIdentidad(ctx, usuario.DocumentoIdentidad)
	}()
	wg.Wait()

	if errEmail != nil {
		return nil, errEmail
	}
	if errDocumento != nil {
		return nil, errDocumento
	}
	if porEmail != nil && porEmail.ID != usuario.ID {
		return nil, domain.ErrEmailRegistradoOtro
	}
	if porDocumento != nil && porDocumento.ID != usuario.ID {
		return nil, domain.ErrDocumentoRegistradoOtro
	}

	var actualizado *entity.Usuario
	err := uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository) error {
		var err error
		actualizado, err = usuarios.Save(ctx, usuario)
		return err
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Listar devuelve todos los usuarios. Cada llamada vuelve a consultar.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.usuarios.GetAll(ctx)
}

// BuscarPorID devuelve (nil, nil) si el usuario no existe.
func (uc *UsuarioUseCase) BuscarPorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return uc.usuarios.GetByID(ctx, id)
}

// Eliminar borra un usuario por ID. Es idempotente: borrar un ID inexistente
// termina sin error.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.usuarios.Delete(ctx, id)
}
