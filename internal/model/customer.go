package model

// Customer represents a person registered to buy raffle tickets.
// Customers are created once at registration and never modified or
// removed afterwards.  The national ID is the registry key: no two
// customers may share one.
//
// Fields:
//  Name       – full name as entered at registration.
//  NationalID – national identity number (cedula/DNI); unique.
//  Phone      – contact phone number.
type Customer struct {
    Name       string `validate:"required"`
    NationalID string `validate:"required"`
    Phone      string `validate:"required"`
}
