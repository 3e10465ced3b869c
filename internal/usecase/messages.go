package usecase

// Messages carries the per-panel display strings. Desks and stands share
// behavior but differ in grammatical gender, so each panel gets its own set.
type Messages struct {
	Created    string
	Updated    string
	Deleted    string
	HasRentals string

	LoadFailedPrefix     string
	SaveFailed           string
	DeleteFailed         string
	CalendarFailedPrefix string

	ResourceNotFound string
}

// Shared strings that do not vary between panels.
const (
	msgRentalCreated    = "Aluguel realizado com sucesso!"
	msgRentFailed       = "Erro ao realizar aluguel"
	msgCustomerNotFound = "Cliente não encontrado"
	msgPlanNotFound     = "Plano de aluguel não encontrado"
	msgCustomerSoon     = "Funcionalidade de cadastro de cliente será implementada em breve"
)

func DeskMessages() Messages {
	return Messages{
		Created:    "Mesa cadastrada com sucesso!",
		Updated:    "Mesa atualizada com sucesso!",
		Deleted:    "Mesa excluída com sucesso!",
		HasRentals: "Esta mesa possui aluguéis vinculados e não pode ser removida. Exclua os aluguéis primeiro.",

		LoadFailedPrefix:     "Erro ao carregar mesas: ",
		SaveFailed:           "Erro ao salvar mesa",
		DeleteFailed:         "Erro ao excluir mesa",
		CalendarFailedPrefix: "Erro ao carregar calendário: ",

		ResourceNotFound: "Mesa não encontrada",
	}
}

func StandMessages() Messages {
	return Messages{
		Created:    "Stand cadastrado com sucesso!",
		Updated:    "Stand atualizado com sucesso!",
		Deleted:    "Stand excluído com sucesso!",
		HasRentals: "Este stand possui aluguéis vinculados e não pode ser removido. Exclua os aluguéis primeiro.",

		LoadFailedPrefix:     "Erro ao carregar stands: ",
		SaveFailed:           "Erro ao salvar stand",
		DeleteFailed:         "Erro ao excluir stand",
		CalendarFailedPrefix: "Erro ao carregar calendário: ",

		ResourceNotFound: "Stand não encontrado",
	}
}
