package storage

import (
	"github.com/renato0307/shellbridge/internal/domain"
)

func hostProfileModelToDomain(m HostProfileModel) domain.HostProfile {
	return domain.HostProfile{
		AuthMethod:   domain.AuthMethod(m.AuthMethod),
		CreatedAt:    m.CreatedAt,
		Host:         m.Host,
		IdentityFile: m.IdentityFile,
		LastUsedAt:   m.LastUsedAt,
		Name:         m.Name,
		Port:         m.Port,
		Username:     m.Username,
	}
}

func domainToHostProfileModel(p domain.HostProfile) HostProfileModel {
	authMethod := string(p.AuthMethod)
	if authMethod == "" {
		authMethod = string(domain.AuthPassword)
	}
	port := p.Port
	if port == 0 {
		port = domain.DefaultSSHPort
	}
	return HostProfileModel{
		AuthMethod:   authMethod,
		CreatedAt:    p.CreatedAt,
		Host:         p.Host,
		IdentityFile: p.IdentityFile,
		LastUsedAt:   p.LastUsedAt,
		Name:         p.Name,
		Port:         port,
		Username:     p.Username,
	}
}
