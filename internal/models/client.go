package models

import "time"

// Endereço no formato dos documentos já sincronizados
type Address struct {
	Street       string `json:"rua"`
	Number       string `json:"numero"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
	ZipCode      string `json:"cep"`
}

// Tutor do pet
type Client struct {
	ID string `json:"id"`

	FullName string  `json:"nomeCompleto"`
	WhatsApp string  `json:"telefoneWhatsApp"`
	Email    string  `json:"email,omitempty"`
	CPF      string  `json:"cpfOpcional,omitempty"`
	Address  Address `json:"endereco"`

	Notes  string `json:"observacoes,omitempty"`
	Status string `json:"status,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Client) GetID() string   { return c.ID }
func (c *Client) SetID(id string) { c.ID = id }

func (c *Client) StampTimes(now time.Time) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
