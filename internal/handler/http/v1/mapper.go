package v1

import (
	"github.com/google/uuid"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

func SignupDTOToInput(dto SignupRequest) service.SignupInput {
	return service.SignupInput{
		Username:          dto.Username,
		Password:          dto.Password,
		Email:             dto.Email,
		Role:              dto.Role,
		Phone:             dto.Phone,
		EmergencyContacts: dto.EmergencyContacts,
		Locality:          dto.Locality,
		Skills:            dto.Skills,
	}
}

// ModelToUserResponse преобразует учетную запись в DTO, хэш пароля не попадает в ответ
func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Role:              user.Role,
		Phone:             user.Phone,
		EmergencyContacts: user.EmergencyContacts,
		Locality:          user.Locality,
		Skills:            user.Skills,
		CreatedAt:         user.CreatedAt,
	}
}

func ModelsToVolunteerResponses(users []*models.User) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(users))
	for i, u := range users {
		responses[i] = &VolunteerResponse{
			ID:       u.ID,
			Username: u.Username,
			Phone:    u.Phone,
			Locality: u.Locality,
			Skills:   u.Skills,
		}
	}
	return responses
}

func SessionToLoginResponse(session *models.Session) *LoginResponse {
	return &LoginResponse{
		Token:     session.Token,
		Role:      session.Role,
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	}
}

func (l *LocationDTO) toModel() models.Location {
	return models.Location{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

func DTOToDistressSignalModel(dto CreateDistressSignalRequest) *models.DistressSignal {
	return &models.DistressSignal{
		Message:  dto.Message,
		Location: dto.Location.toModel(),
	}
}

func DTOToResourceRequestModel(dto CreateResourceRequestRequest) *models.ResourceRequest {
	return &models.ResourceRequest{
		ResourceType: dto.ResourceType,
		Quantity:     dto.Quantity,
		Location:     dto.Location.toModel(),
	}
}

func DTOToResourceModel(dto ResourceRequest) *models.Resource {
	return &models.Resource{
		Name:     dto.Name,
		Quantity: *dto.Quantity,
		Unit:     dto.Unit,
	}
}

// DTOToTaskModel - VolunteerID уже проверен валидатором (uuid)
func DTOToTaskModel(dto AssignTaskRequest) *models.VolunteerTask {
	return &models.VolunteerTask{
		VolunteerID: uuid.MustParse(dto.VolunteerID),
		Description: dto.Description,
	}
}

func DTOToIncidentModel(dto CreateIncidentRequest, attachments []string) *models.Incident {
	return &models.Incident{
		Category:    dto.Category,
		Severity:    dto.Severity,
		Description: dto.Description,
		AssignTo:    dto.AssignTo,
		Location:    models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		Attachments: attachments,
	}
}
