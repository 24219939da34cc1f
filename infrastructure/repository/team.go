package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	teamMembersTable = "team_members tm"
)

type TeamRepository interface {
	// GetAcceptedMembership devolve o vínculo aceito do tenant membro com o
	// dono do time, ou nil se o tenant não for membro de time algum
	GetAcceptedMembership(ctx context.Context, memberTenantID int) (*domain.TeamMember, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) GetAcceptedMembership(ctx context.Context, memberTenantID int) (*domain.TeamMember, error) {
	query, args, err := squirrel.
		Select("tm.member_tenant_id, tm.owner_tenant_id, tm.status, tm.created_at").
		From(teamMembersTable).
		Where(squirrel.Eq{
			"tm.member_tenant_id": memberTenantID,
			"tm.status":           domain.TeamMemberAccepted,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	member := &domain.TeamMember{}
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&member.MemberTenantID, &member.OwnerTenantID, &member.Status, &member.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vínculo de time: %w", err)
	}

	return member, nil
}
