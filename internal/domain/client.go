package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a business contact record. Clients carry no ownership relation
// to users. BSON names match the pre-existing Cliente collection.
type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName string             `bson:"razao_social,omitempty" json:"company_name,omitempty"`
	Name        string             `bson:"nome" json:"name"`
	Phone       string             `bson:"telefone,omitempty" json:"phone,omitempty"`
	Mobile      string             `bson:"celular,omitempty" json:"mobile,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	City        string             `bson:"cidade,omitempty" json:"city,omitempty"`
	Company     string             `bson:"empresa,omitempty" json:"company,omitempty"`
	TaxID       string             `bson:"cpf_cnpj,omitempty" json:"tax_id,omitempty"`
	IDCard      string             `bson:"RG,omitempty" json:"id_card,omitempty"`
	BirthDate   *time.Time         `bson:"data_nascimento,omitempty" json:"birth_date,omitempty"`
	Address     string             `bson:"endereco,omitempty" json:"address,omitempty"`
	Notes       string             `bson:"observacoes,omitempty" json:"notes,omitempty"`
	Salesperson string             `bson:"vendedor,omitempty" json:"salesperson,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ClientPatch describes a partial update. Nil fields are left untouched.
type ClientPatch struct {
	CompanyName *string
	Name        *string
	Phone       *string
	Mobile      *string
	Email       *string
	City        *string
	Company     *string
	TaxID       *string
	IDCard      *string
	BirthDate   *time.Time
	Address     *string
	Notes       *string
	Salesperson *string
}

// IsZero reports whether the patch carries no changes.
func (p ClientPatch) IsZero() bool {
	return p.CompanyName == nil && p.Name == nil && p.Phone == nil && p.Mobile == nil &&
		p.Email == nil && p.City == nil && p.Company == nil && p.TaxID == nil &&
		p.IDCard == nil && p.BirthDate == nil && p.Address == nil && p.Notes == nil &&
		p.Salesperson == nil
}
