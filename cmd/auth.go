package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with the Vocabloom backend",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Vocabloom",
	Long:  "Authenticate with the Vocabloom backend and save the session tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		apiURL, _ := cmd.Flags().GetString("api-url")
		profile, _ := cmd.Flags().GetString("profile")

		if apiURL == "" || !cmd.Flags().Changed("api-url") {
			apiURL = cfg.ResolveAPIURL(profile)
		}

		c := client.New(apiURL, cfg.TokenStore(profile))
		if err := c.Login(username, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		store := cfg.TokenStore(profile)
		if err := cfg.SaveProfile(profile, apiURL, store.Access(), store.Refresh()); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		output.Success("Successfully logged in as %s", username)
		output.Info("Profile '%s' saved to ~/.vocabloom/config.yaml", cfg.ResolveProfile(profile))
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Vocabloom account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		user, err := apiClient(cmd).Register(username, email, password, firstName, lastName)
		if err != nil {
			return err
		}

		output.Success("Account '%s' created", user.Username)
		output.Info("Run 'vocabloom auth login' to start a session")
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Vocabloom",
	Long:  "End the server-side session and remove stored tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient(cmd).Logout()
		profile, _ := cmd.Flags().GetString("profile")
		output.Success("Logged out from profile '%s'", cfg.ResolveProfile(profile))
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := apiClient(cmd)

		claims, err := c.Whoami()
		if err != nil {
			return errors.New("not logged in, please run 'vocabloom auth login'")
		}
		if !c.IsAuthenticated() {
			return errors.New("session expired, please run 'vocabloom auth login'")
		}

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(claims)
		}

		profile, _ := cmd.Flags().GetString("profile")
		output.Info("Profile: %s", cfg.ResolveProfile(profile))
		output.Info("User ID: %d", claims.UserID)
		if claims.Username != "" {
			output.Info("Username: %s", claims.Username)
		}
		output.Info("Token expires: %s", claims.ExpiresAt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)

	authLoginCmd.Flags().StringP("username", "u", "", "Username")
	authLoginCmd.Flags().StringP("password", "p", "", "Password")
	authLoginCmd.Flags().String("api-url", "", "Backend API URL (default from config/env)")
	authLoginCmd.MarkFlagRequired("username")
	authLoginCmd.MarkFlagRequired("password")

	authRegisterCmd.Flags().StringP("username", "u", "", "Username")
	authRegisterCmd.Flags().StringP("email", "e", "", "Email address")
	authRegisterCmd.Flags().StringP("password", "p", "", "Password")
	authRegisterCmd.Flags().String("first-name", "", "First name")
	authRegisterCmd.Flags().String("last-name", "", "Last name")
	authRegisterCmd.MarkFlagRequired("username")
	authRegisterCmd.MarkFlagRequired("email")
	authRegisterCmd.MarkFlagRequired("password")
}
