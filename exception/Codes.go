// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exception

// Request plumbing errors keep technical English messages, everything a
// PANDAMONIUM user can see is in French.
const (
	BadRequestBody    = "10"
	BadRequestBodyMsg = "Failed to decode body"

	EmptyParameter    = "11"
	EmptyParameterMsg = "Parameter $param should not be empty"

	IncorrectParamType    = "12"
	IncorrectParamTypeMsg = "Parameter $param should be of type $type"

	InvalidURLEscape    = "13"
	InvalidURLEscapeMsg = "Failed to unescape parameter $param"

	RequiredParamsMissing    = "14"
	RequiredParamsMissingMsg = "Required parameters are missing: $params"

	ConnectionNotUpgraded    = "15"
	ConnectionNotUpgradedMsg = "Failed to upgrade connection to websocket"
)

// Record validation. The message carried by the error is the column
// constraint's own French message.
const (
	InvalidEntityValue    = "100"
	InvalidEntityValueMsg = "$message"

	MalformedUuidChain    = "101"
	MalformedUuidChainMsg = "The UUID chain is malformed."

	NoChangesToUpdate    = "102"
	NoChangesToUpdateMsg = "Une requête UPDATE ne peut pas être exécutée si aucun changement de valeur n'est exécuté dans la base de données."

	MissingFetchIdentifier    = "103"
	MissingFetchIdentifierMsg = "Tentative de récupérer une entité dans la base de données sans fournir de valeur sur laquelle s'appuyer."
)

// Per-column French rejection messages, lifted verbatim from the product.
const (
	UsernameFormatMsg            = "Votre nom d'utilisateur doit faire entre 3 et 16 caractères alphanumériques pouvant contenir des tirets (-), des points (.) ou des underscores (_)."
	EmailFormatMsg               = "Le format de votre adresse email est invalide."
	PasswordLengthMsg            = "Votre mot de passe doit faire entre 6 et 64 caractères."
	DateOfBirthTooYoungMsg       = "Vous êtes trop jeune pour vous inscrire sur PANDAMONIUM."
	TooManyFriendsMsg            = "Vous avez trop d'amis (100 maximum)."
	TooManyRelationsMsg          = "Vous avez trop de connaissances (100 maximum)."
	TooManyBamboosMsg            = "Vous avez trop de bambous (100 maximum)."
	PronounsTooLongMsg           = "Vos pronoms sont trop longs."
	PublicDisplayNameTooLongMsg  = "Votre pseudo public est trop long."
	PublicBioTooLongMsg          = "Votre bio publique est trop longue."
	PrivateDisplayNameTooLongMsg = "Votre pseudo privé est trop long."
	PrivateBioTooLongMsg         = "Votre bio privée est trop longue."
	BambooNameTooLongMsg         = "Le nom de votre bambou est trop long."
	BranchNameTooLongMsg         = "Le nom de votre branche est trop long."
	MessageTooShortMsg           = "Votre message est trop court pour être envoyé."
	RoleNameTooLongMsg           = "Le nom donné à ce rôle est trop long (50 caractères maximum)."
	RoleHierarchyOutOfRangeMsg   = "La hiérarchie d'un rôle doit être comprise entre 0 et 100."
)

// Authentication and account management.
const (
	InvalidLoginIdentifier    = "200"
	InvalidLoginIdentifierMsg = "L'identifiant $identifier est invalide."

	IncorrectPassword    = "201"
	IncorrectPasswordMsg = "Mot de passe incorrect pour l'identifiant $identifier."

	NoUserForIdentifier    = "202"
	NoUserForIdentifierMsg = "Aucun utilisateur trouvé avec l'identifiant $identifier."

	DuplicateUserIdentity    = "203"
	DuplicateUserIdentityMsg = "Une erreur est survenue lors de la création de votre compte. Veuillez utiliser un autre nom d'utilisateur ou un autre email."

	DuplicateUserUpdate    = "204"
	DuplicateUserUpdateMsg = "Une erreur est survenue lors de la mise à jour de vos données. Le nom d'utilisateur ou l'email est peut-être déjà pris par un autre compte."

	TooManyLoginAttempts    = "205"
	TooManyLoginAttemptsMsg = "Trop de tentatives de connexion pour l'identifiant $identifier. Veuillez réessayer plus tard."

	NotAuthenticated    = "206"
	NotAuthenticatedMsg = "Vous devez être connecté pour effectuer cette action."
)

// Domain objects.
const (
	UserNotFound    = "300"
	UserNotFoundMsg = "Aucun utilisateur avec l'identifiant $userId."

	BambooNotFound    = "301"
	BambooNotFoundMsg = "Aucun bambou avec l'identifiant $bambooId."

	BranchNotFound    = "302"
	BranchNotFoundMsg = "Aucune branche avec l'identifiant $branchId."

	MessageNotFound    = "303"
	MessageNotFoundMsg = "Aucun message avec l'identifiant $messageId."

	RoleNotFound    = "304"
	RoleNotFoundMsg = "Aucun rôle avec l'identifiant $roleId."

	UserAvatarNotFound    = "305"
	UserAvatarNotFoundMsg = "Aucun avatar pour l'utilisateur $userId."

	NotBambooMember    = "306"
	NotBambooMemberMsg = "Vous n'êtes pas membre de ce bambou."

	NotMessageSender    = "307"
	NotMessageSenderMsg = "Vous ne pouvez pas modifier un message envoyé par un autre utilisateur."

	AlreadyBambooMember    = "308"
	AlreadyBambooMemberMsg = "Vous êtes déjà membre de ce bambou."
)
