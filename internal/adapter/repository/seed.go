package repository

import (
	"fmt"

	"github.com/quintadosovos/erp-avicola/internal/domain/account"
	"github.com/quintadosovos/erp-avicola/internal/domain/category"
	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
)

// SeedData reúne os dados iniciais carregados no primeiro arranque,
// quando o diretório de dados ainda não tem snapshots
type SeedData struct {
	Products   []product.Product
	Employees  []employee.Employee
	Users      []user.User
	Accounts   []account.Account
	Categories map[category.Kind][]string
}

// EmptySeed retorna um SeedData sem nenhum dado. Útil em testes.
func EmptySeed() *SeedData {
	return &SeedData{Categories: map[category.Kind][]string{}}
}

// DefaultSeed retorna o catálogo, o quadro de funcionários, o usuário
// administrador e as contas correntes iniciais da fazenda
func DefaultSeed() (*SeedData, error) {
	admin := user.User{
		ID:          1,
		Username:    "admin",
		Role:        user.RoleAdmin,
		Category:    "Super Admin",
		DisplayName: "Administrador Principal",
		CreatedAt:   "2023-01-01",
		Permissions: user.AllPermissions,
	}
	if err := admin.SetPassword("123"); err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha inicial: %w", err)
	}

	return &SeedData{
		Products: []product.Product{
			{ID: 1, Name: "Incubadora Digital Automática", Description: "Capacidade para 54 ovos com controle de umidade e viragem automática.", Price: 850000.00, CostPrice: 595000.00, Category: "Incubação", Image: "https://images.unsplash.com/photo-1594488358434-738980327f1c?q=80&w=400&h=400&fit=crop", Rating: 4.9, Stock: 10},
			{ID: 2, Name: "Ração Postura Premium 20kg", Description: "Balanceada com cálcio e proteínas para máxima produtividade de ovos.", Price: 115000.00, CostPrice: 80500.00, Category: "Rações", Image: "https://images.unsplash.com/photo-1516467508483-a7212febe31a?q=80&w=400&h=400&fit=crop", Rating: 4.8, Stock: 25},
			{ID: 3, Name: "Bebedouro Automático Nipple", Description: "Kit com 10 unidades. Evita desperdício e mantém a água sempre limpa.", Price: 89000.00, CostPrice: 62300.00, Category: "Equipamentos", Image: "https://images.unsplash.com/photo-1589923188900-85dae523342b?q=80&w=400&h=400&fit=crop", Rating: 4.7, Stock: 15},
			{ID: 4, Name: "Suplemento Vitamínico Fortalecedor", Description: "Complexo A, D3 e E para crescimento saudável de pintinhos.", Price: 45000.00, CostPrice: 31500.00, Category: "Saúde", Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=400&h=400&fit=crop", Rating: 4.6, Stock: 40},
			{ID: 5, Name: "Comedouro Tubular 15kg", Description: "Chapa galvanizada anti-ferrugem com regulagem de altura.", Price: 129000.00, CostPrice: 90300.00, Category: "Equipamentos", Image: "https://images.unsplash.com/photo-1548550023-2bdb3c5beed7?q=80&w=400&h=400&fit=crop", Rating: 4.5, Stock: 12},
			{ID: 6, Name: "Lâmpada de Aquecimento Cerâmica", Description: "100W de potência. Emite calor sem luz, ideal para o descanso das aves.", Price: 64000.00, CostPrice: 44800.00, Category: "Acessórios", Image: "https://images.unsplash.com/photo-1520699697851-3dc68aa3a474?q=80&w=400&h=400&fit=crop", Rating: 4.8, Stock: 20},
			{ID: 7, Name: "Ninho Coletivo Galvanizado", Description: "6 furos com fundo inclinado para coleta segura de ovos.", Price: 420000.00, CostPrice: 294000.00, Category: "Equipamentos", Image: "https://images.unsplash.com/photo-1569254994521-ddb43af0a944?q=80&w=400&h=400&fit=crop", Rating: 4.4, Stock: 5},
			{ID: 8, Name: "Termômetro Higrômetro Digital", Description: "Sensor externo para monitoramento preciso de granjas e chocadeiras.", Price: 38000.00, CostPrice: 26600.00, Category: "Acessórios", Image: "https://images.unsplash.com/photo-1581092160562-40aa08e78837?q=80&w=400&h=400&fit=crop", Rating: 4.7, Stock: 35},
		},
		Employees: []employee.Employee{
			{ID: 1, Name: "Carlos Silva", Role: "Técnico de Campo", Category: "Produção", Salary: 280000.00, AdmissionDate: "2023-01-15", Contact: "923 000 001", PaymentStatus: employee.PaymentPending},
			{ID: 2, Name: "Ana Oliveira", Role: "Gerente Financeira", Category: "Gestão", Salary: 450000.00, AdmissionDate: "2022-11-20", Contact: "923 000 002", PaymentStatus: employee.PaymentPending},
		},
		Users: []user.User{admin},
		Accounts: []account.Account{
			{ID: 1, EntityName: "Rações de Angola Lda", Type: account.TypeSupplier, Balance: -1500000, Status: account.StatusDebtor, LastActivity: "2024-05-01"},
			{ID: 2, EntityName: "Cooperativa Avícola Sul", Type: account.TypeClient, Balance: 450000, Status: account.StatusCreditor, LastActivity: "2024-05-10"},
		},
		Categories: map[category.Kind][]string{
			category.KindProduct:  {"Rações", "Equipamentos", "Incubação", "Saúde", "Acessórios"},
			category.KindEmployee: {"Produção", "Gestão", "Logística", "Comercial"},
			category.KindAdmin:    {"Super Admin", "Gerência", "Operador", "Financeiro"},
		},
	}, nil
}
