package syncing

import "errors"

var (
	// ErrNoActiveConnections indica que o tenant não tem nenhuma conexão
	// de plataforma ativa para sincronizar
	ErrNoActiveConnections = errors.New("tenant não possui conexões ativas")

	// ErrUnknownPlatform indica uma conexão apontando para uma plataforma
	// sem adapter registrado
	ErrUnknownPlatform = errors.New("plataforma sem adapter registrado")
)
