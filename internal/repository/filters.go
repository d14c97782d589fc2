package repository

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
)

// taskOwnerFilter matches every historical shape of the owner reference:
// stored under idUsuario or usuario_id, as an ObjectID or as its hex string.
func taskOwnerFilter(userID string) bson.M {
	matchers := []bson.M{
		{"idUsuario": userID},
		{"usuario_id": userID},
	}
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		matchers = append(matchers,
			bson.M{"idUsuario": oid},
			bson.M{"usuario_id": oid},
		)
	}
	return bson.M{"$or": matchers}
}

// clientSearchFilter matches the query as a literal, case-insensitive
// substring over the searchable fields.
func clientSearchFilter(query string) bson.M {
	regex := bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	return bson.M{"$or": []bson.M{
		{"nome": regex},
		{"cidade": regex},
		{"razao_social": regex},
	}}
}

func userSetDoc(patch domain.UserPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.Name != nil {
		set["nome"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["senha"] = *patch.PasswordHash
	}
	if patch.Type != nil {
		set["tipo"] = *patch.Type
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	return set
}

func taskSetDoc(patch domain.TaskPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.Title != nil {
		set["titulo"] = *patch.Title
	}
	if patch.Description != nil {
		set["descricao"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["prioridade"] = *patch.Priority
	}
	if patch.StartDate != nil {
		set["data_inicio"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["data_termino"] = *patch.EndDate
	}
	if patch.CampaignID != nil {
		set["idCampanha"] = *patch.CampaignID
	}
	return set
}

func clientSetDoc(patch domain.ClientPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.CompanyName != nil {
		set["razao_social"] = *patch.CompanyName
	}
	if patch.Name != nil {
		set["nome"] = *patch.Name
	}
	if patch.Phone != nil {
		set["telefone"] = *patch.Phone
	}
	if patch.Mobile != nil {
		set["celular"] = *patch.Mobile
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.City != nil {
		set["cidade"] = *patch.City
	}
	if patch.Company != nil {
		set["empresa"] = *patch.Company
	}
	if patch.TaxID != nil {
		set["cpf_cnpj"] = *patch.TaxID
	}
	if patch.IDCard != nil {
		set["RG"] = *patch.IDCard
	}
	if patch.BirthDate != nil {
		set["data_nascimento"] = *patch.BirthDate
	}
	if patch.Address != nil {
		set["endereco"] = *patch.Address
	}
	if patch.Notes != nil {
		set["observacoes"] = *patch.Notes
	}
	if patch.Salesperson != nil {
		set["vendedor"] = *patch.Salesperson
	}
	return set
}
