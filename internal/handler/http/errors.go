// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// User-facing messages shown as flash messages or plain-text bodies.
const (
	msgTooManyAttempts      = "Muitas tentativas. Tente mais tarde."
	msgTooManyLogins        = "Muitas tentativas. Aguarde."
	msgSlugTaken            = "Este código de adesivo já está em uso!"
	msgEmailTaken           = "Este e-mail já está cadastrado!"
	msgSignupDone           = "Cadastro realizado! Preencha seus dados."
	msgSignupFailed         = "Erro ao cadastrar. Tente novamente."
	msgWrongCredentials     = "E-mail ou senha incorretos."
	msgLoginFailed          = "Erro ao entrar. Tente novamente."
	msgResetLinkSent        = "Link de recuperação enviado para seu e-mail."
	msgMailFailed           = "Erro ao enviar e-mail. Tente novamente."
	msgEmailNotFound        = "E-mail não encontrado no sistema."
	msgInvalidResetLink     = "Link inválido ou expirado."
	msgPasswordChanged      = "Senha alterada com sucesso! Faça login."
	msgProfileUpdated       = "Dados atualizados com sucesso!"
	msgProfileUpdateFailed  = "Erro ao atualizar dados. Tente novamente."
	msgDomainTaken          = "Este domínio já está vinculado a outro perfil."
	msgProfileLoadFailed    = "Erro ao carregar perfil."
	msgStoreSlugTaken       = "Este link de loja já existe. Escolha outro."
	msgStoreCreateFailed    = "Erro ao criar loja. Tente novamente."
	msgStoreNotFound        = "Loja não encontrada"
	msgWrongStorePassword   = "Senha incorreta"
	msgStoreEmailMismatch   = "E-mail não corresponde ao cadastro desta loja."
	msgInternalServerError  = "Erro interno do servidor"
	msgPasswordChangeFailed = "Erro ao alterar senha. Tente novamente."
)
