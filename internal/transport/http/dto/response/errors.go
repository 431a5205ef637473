package response

// Predefined bodies for the failures that are not tied to a specific input
// value. Handlers build the parameterized ones with Error / ErrorWithDetails.
var (
	ErrTokenFormat = ErrorResponse{
		Error: "Format du token invalide. Utilisez: Bearer <token>",
	}

	ErrTokenMissing = ErrorResponse{
		Error: "Token manquant. Authentification requise.",
	}

	ErrTokenInvalid = ErrorResponse{
		Error: "Token invalide ou expiré",
	}

	ErrInvalidJSON = ErrorResponse{
		Error: "Données JSON invalides",
	}

	ErrCredentialsRequired = ErrorResponse{
		Error: "Les champs 'username' et 'password' sont requis",
	}

	ErrBadCredentials = ErrorResponse{
		Error: "Nom d'utilisateur ou mot de passe incorrect",
	}

	ErrEndpointNotFound = ErrorResponse{
		Error:   "Endpoint non trouvé",
		Message: "Consultez GET / pour la liste des endpoints disponibles",
	}

	ErrInternal = ErrorResponse{
		Error: "Erreur interne du serveur",
	}
)
